package lexicon

// Regex category tables. Patterns are written for lower-cased input.
//
// Two vocabulary systems intentionally coexist: these regex categories drive
// count-based scoring, while the keyword and phrase lists further down drive
// the first-match-wins rule detector. Their vocabularies overlap but are not
// identical, and both are kept so existing report output stays stable.

// Fallacies groups common logical-fallacy indicator patterns.
var Fallacies = Table{
	{Name: "ad_hominem", Patterns: compileRaw([]string{
		`\b(you are|you're)\s+(stupid|dumb|idiot|moron)`,
		`\bthat's\s+because\s+you\b`,
		`\bwhat\s+do\s+you\s+know\b`,
		`\byou\s+always\b`,
		`\byou\s+never\b`,
	})},
	{Name: "straw_man", Patterns: compileRaw([]string{
		`\bso\s+you're\s+saying\b`,
		`\bwhat\s+you're\s+really\s+saying\b`,
		`\byou\s+think\s+that\b.*\bis\s+okay\b`,
	})},
	{Name: "false_dichotomy", Patterns: compileRaw([]string{
		`\beither\s+.*\s+or\s+.*\b`,
		`\bif\s+not\s+.*\s+then\s+.*\b`,
		`\byou're\s+either\s+.*\s+or\s+.*\b`,
	})},
	{Name: "appeal_to_emotion", Patterns: compileRaw([]string{
		`\bthink\s+of\s+the\s+children\b`,
		`\bhow\s+can\s+you\s+.*\s+when\b`,
		`\bimagine\s+if\s+.*\s+happened\s+to\s+you\b`,
	})},
	{Name: "bandwagon", Patterns: compileRaw([]string{
		`\beveryone\s+(knows|agrees|thinks)\b`,
		`\bmost\s+people\s+(believe|think|agree)\b`,
		`\ball\s+the\s+experts\s+say\b`,
	})},
}

// PersuasionIndicators is the coarse tactic table used by the influence
// scorer and tactic-frequency analysis. It is deliberately smaller and
// broader than the ethos/pathos/logos lexicons.
var PersuasionIndicators = Table{
	{Name: "emotional_appeal", Patterns: compileRaw([]string{
		`\bfeel|feeling|felt\b`,
		`\bheart\b`,
		`\blove|hate\b`,
		`\bfear|afraid|scared\b`,
		`\bangry|mad|furious\b`,
	})},
	{Name: "authority", Patterns: compileRaw([]string{
		`\bexpert|specialist|professional\b`,
		`\bstudies?\s+show\b`,
		`\bresearch\s+(shows|indicates|proves)\b`,
		`\baccording\s+to\b`,
	})},
	{Name: "logic", Patterns: compileRaw([]string{
		`\btherefore\b`,
		`\bbecause\b`,
		`\bsince\b`,
		`\bthus\b`,
		`\bconsequently\b`,
		`\bas\s+a\s+result\b`,
	})},
	{Name: "social_proof", Patterns: compileRaw([]string{
		`\bpeople\s+(are|do|think|believe)\b`,
		`\btrend\b`,
		`\bpopular\b`,
		`\bmajority\b`,
	})},
}

// ManipulationTactics groups coercion indicator patterns.
var ManipulationTactics = Table{
	{Name: "gaslighting", Patterns: compileRaw([]string{
		`\byou're\s+(overreacting|being\s+dramatic)\b`,
		`\bthat\s+never\s+happened\b`,
		`\byou're\s+(imagining|misremembering)\b`,
	})},
	{Name: "guilt_tripping", Patterns: compileRaw([]string{
		`\bafter\s+all\s+i've\s+done\b`,
		`\bi\s+thought\s+you\s+cared\b`,
		`\byou\s+never\s+.*\s+anymore\b`,
	})},
	{Name: "intimidation", Patterns: compileRaw([]string{
		`\byou'll\s+regret\b`,
		`\bor\s+else\b`,
		`\byou\s+don't\s+want\s+to\s+.*\s+me\b`,
	})},
}

// Classical rhetorical appeal lexicons for the heuristic persuasion scorer.

var EthosLexicon = []string{
	"expert", "expertise", "authority", "authoritative", "credentials",
	"experience", "experienced", "proven", "track record", "reliable",
	"trustworthy", "honest", "integrity", "sincere",
	"research shows", "studies indicate", "according to experts",
	"dr.", "professor",
	"we believe", "our commitment", "our values", "ethically", "responsible",
}

var PathosLexicon = []string{
	"imagine", "feel", "feeling", "heart", "soul", "spirit",
	"passion", "passionate", "hope", "dream", "aspire", "desire", "yearn",
	"joy", "happy", "delight", "pleasure", "wonderful", "amazing",
	"fantastic", "miracle",
	"sad", "sorrow", "pain", "suffering", "heartbreaking", "tragic",
	"unfortunate",
	"fear", "afraid", "danger", "risk", "threat", "anxiety", "worry",
	"anger", "outrage", "frustration", "injustice", "unfair",
	"love", "compassion", "empathy", "care", "kindness", "sympathy",
	"urgent", "critical", "immediate", "now", "crisis", "must act",
	"story", "tale", "narrative", "journey", "vulnerable", "struggle",
	"victory",
	"our children", "our future", "community", "family", "shared values",
	"common good",
}

var LogosLexicon = []string{
	"logic", "logical", "reason", "rational", "rationale", "sound argument",
	"evidence", "proof", "data", "statistics", "facts", "figures", "numbers",
	"chart", "graph", "analysis", "analyze", "analytical",
	"study", "research", "findings",
	"because", "therefore", "consequently", "as a result", "thus", "hence",
	"ergo", "if...then", "since", "given that", "it follows that",
	"clear", "clearly", "obvious", "evidently", "plainly",
	"demonstrates", "shows", "indicates", "points to", "verifies", "confirms",
	"hypothesis", "theory", "principle", "premise", "conclusion",
	"compare", "contrast", "differentiate", "classify", "organize",
	"systematic",
}

// Compiled appeal lexicons, built once at init.
var (
	EthosPatterns  = CompileWords(EthosLexicon)
	PathosPatterns = CompileWords(PathosLexicon)
	LogosPatterns  = CompileWords(LogosLexicon)
)

// Keyword and phrase lists for the first-match-wins rule detector. These are
// distinct from the regex categories above.

var AdHominemKeywords = []string{
	"idiot", "stupid", "moron", "ignorant", "fool", "jerk", "loser", "naive",
	"you are dumb", "you're a joke", "he is a liar", "she is incompetent",
	"they are clueless", "personal attack",
}

// FalseDichotomyPhrases are checked by lower-cased substring containment,
// not word boundaries. The bare "either...or" entry gets an extra
// either-followed-by-or token guard in the detector, on top of the
// substring check.
var FalseDichotomyPhrases = []string{
	"either...or",
	"it's either...or...",
	"you are either with us or against us",
	"either you agree or you don't",
	"there are only two types of people",
	"no middle ground",
	"black and white thinking",
}

var GuiltTrippingKeywords = []string{
	"if you cared", "if you loved me", "you would understand if",
	"don't you feel bad", "after all I've done for you",
	"I sacrificed so much", "you owe me", "making me feel guilty",
	"you always make me",
}

var GaslightingKeywords = []string{
	"you're imagining things", "that never happened", "you are crazy",
	"you're being irrational", "you're too sensitive", "don't be so dramatic",
	"I never said that", "you're misremembering", "it's all in your head",
	"you're making it up",
}

var (
	AdHominemPatterns     = CompileWords(AdHominemKeywords)
	GuiltTrippingPatterns = CompileWords(GuiltTrippingKeywords)
	GaslightingPatterns   = CompileWords(GaslightingKeywords)
)
