package patterns

// defaultLegalTerms is the built-in regulatory/procedural vocabulary. Matched
// case-insensitively on word boundaries.
var defaultLegalTerms = []string{
	"plaintiff", "defendant", "appellant", "respondent", "petitioner",
	"court", "judge", "justice", "attorney", "counsel", "lawyer",
	"statute", "regulation", "ordinance", "amendment", "clause",
	"section", "article", "paragraph", "subsection", "provision",
	"requirement", "obligation", "liability", "damages", "compensation",
	"remedy", "injunction", "restraining order", "contempt", "sanction",
	"penalty", "fine", "sentence", "conviction", "acquittal", "dismissal",
	"summary judgment", "default judgment", "consent decree", "settlement",
	"mediation", "arbitration", "appeal", "reversal", "affirmance", "remand",
	"writ", "habeas corpus", "mandamus", "certiorari", "stare decisis",
	"precedent", "dicta", "holding", "per curiam", "majority opinion",
	"dissenting opinion", "concurring opinion", "en banc", "trial court",
	"appellate court", "supreme court", "district court", "circuit court",
	"bankruptcy court", "family court", "probate court", "tribunal",
	"discovery", "deposition", "interrogatory", "subpoena", "witness",
	"expert witness", "direct examination", "cross examination", "objection",
	"sustained", "overruled", "harmless error", "reversible error",
	"plain error",
}
