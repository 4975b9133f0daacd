package keywords

var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "been": true, "by": true, "for": true, "from": true, "has": true,
	"he": true, "her": true, "his": true, "i": true, "in": true, "is": true,
	"it": true, "its": true, "me": true, "my": true, "of": true, "on": true,
	"our": true, "she": true, "that": true, "the": true, "their": true,
	"them": true, "there": true, "these": true, "they": true, "this": true,
	"to": true, "us": true, "was": true, "we": true, "were": true, "will": true,
	"with": true, "would": true, "could": true, "should": true, "may": true,
	"might": true, "can": true, "must": true, "shall": true, "do": true,
	"does": true, "did": true, "have": true, "had": true, "having": true,
	"or": true, "but": true, "not": true, "no": true, "nor": true, "so": true,
	"yet": true, "however": true, "therefore": true, "thus": true,
	"hence": true, "because": true, "since": true, "although": true,
	"though": true, "unless": true, "until": true, "while": true,
	"where": true, "when": true, "who": true, "whom": true, "whose": true,
	"which": true, "what": true, "why": true, "how": true, "if": true,
	"you": true, "your": true,
}
