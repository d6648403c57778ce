package wordlist

import "strings"

type suffixRule struct {
	suffix  string
	replace string
}

// suffixRules strip common inflections. Order matters only in that every
// matching rule contributes a candidate; the caller tries them all.
var suffixRules = []suffixRule{
	// plural and third person
	{"ies", "y"},
	{"ies", "ie"},
	{"es", ""},
	{"es", "e"},
	{"s", ""},
	// past tense and progressive
	{"ied", "y"},
	{"ed", ""},
	{"ed", "e"},
	{"ing", ""},
	{"ing", "e"},
	// doubled final consonant
	{"ning", "n"},
	{"ting", "t"},
	{"ping", "p"},
	{"bing", "b"},
	{"ding", "d"},
	{"ging", "g"},
	{"ming", "m"},
	// comparative and superlative
	{"ier", "y"},
	{"iest", "y"},
	{"er", ""},
	{"er", "e"},
	{"est", ""},
	{"est", "e"},
	// adverbs
	{"ly", ""},
	{"ily", "y"},
	// derivational endings
	{"tion", "t"},
	{"ness", ""},
	{"ment", ""},
	{"able", ""},
	{"able", "e"},
	{"ible", ""},
}

// irregulars maps inflected forms of common irregular verbs to their base.
var irregulars = map[string]string{
	"has": "have", "had": "have", "having": "have",
	"is": "be", "am": "be", "are": "be", "was": "be", "were": "be", "been": "be", "being": "be",
	"does": "do", "did": "do", "done": "do", "doing": "do",
	"goes": "go", "went": "go", "gone": "go", "going": "go",
	"says": "say", "said": "say", "saying": "say",
	"makes": "make", "made": "make", "making": "make",
	"takes": "take", "took": "take", "taken": "take", "taking": "take",
	"comes": "come", "came": "come", "coming": "come",
	"sees": "see", "saw": "see", "seen": "see", "seeing": "see",
	"knows": "know", "knew": "know", "known": "know", "knowing": "know",
	"gets": "get", "got": "get", "gotten": "get", "getting": "get",
	"gives": "give", "gave": "give", "given": "give", "giving": "give",
	"finds": "find", "found": "find", "finding": "find",
	"thinks": "think", "thought": "think", "thinking": "think",
	"tells": "tell", "told": "tell", "telling": "tell",
	"becomes": "become", "became": "become", "becoming": "become",
	"leaves": "leave", "left": "leave", "leaving": "leave",
	"feels": "feel", "felt": "feel", "feeling": "feel",
	"puts": "put", "putting": "put",
	"brings": "bring", "brought": "bring", "bringing": "bring",
	"begins": "begin", "began": "begin", "begun": "begin", "beginning": "begin",
	"keeps": "keep", "kept": "keep", "keeping": "keep",
	"holds": "hold", "held": "hold", "holding": "hold",
	"writes": "write", "wrote": "write", "written": "write", "writing": "write",
	"stands": "stand", "stood": "stand", "standing": "stand",
	"hears": "hear", "heard": "hear", "hearing": "hear",
	"lets": "let", "letting": "let",
	"means": "mean", "meant": "mean", "meaning": "mean",
	"sets": "set", "setting": "set",
	"meets": "meet", "met": "meet", "meeting": "meet",
	"runs": "run", "ran": "run", "running": "run",
	"pays": "pay", "paid": "pay", "paying": "pay",
	"sits": "sit", "sat": "sit", "sitting": "sit",
	"speaks": "speak", "spoke": "speak", "spoken": "speak", "speaking": "speak",
	"lies": "lie", "lay": "lie", "lain": "lie", "lying": "lie",
	"leads": "lead", "led": "lead", "leading": "lead",
	"reads": "read", "reading": "read",
	"grows": "grow", "grew": "grow", "grown": "grow", "growing": "grow",
	"loses": "lose", "lost": "lose", "losing": "lose",
	"falls": "fall", "fell": "fall", "fallen": "fall", "falling": "fall",
	"sends": "send", "sent": "send", "sending": "send",
	"builds": "build", "built": "build", "building": "build",
	"understands": "understand", "understood": "understand", "understanding": "understand",
	"draws": "draw", "drew": "draw", "drawn": "draw", "drawing": "draw",
	"breaks": "break", "broke": "break", "broken": "break", "breaking": "break",
	"spends": "spend", "spent": "spend", "spending": "spend",
	"cuts": "cut", "cutting": "cut",
	"catches": "catch", "caught": "catch", "catching": "catch",
	"chooses": "choose", "chose": "choose", "chosen": "choose", "choosing": "choose",
	"wears": "wear", "wore": "wear", "worn": "wear", "wearing": "wear",
	"eats": "eat", "ate": "eat", "eaten": "eat", "eating": "eat",
	"drives": "drive", "drove": "drive", "driven": "drive", "driving": "drive",
	"rises": "rise", "rose": "rise", "risen": "rise", "rising": "rise",
	"wins": "win", "won": "win", "winning": "win",
	"throws": "throw", "threw": "throw", "thrown": "throw", "throwing": "throw",
	"flies": "fly", "flew": "fly", "flown": "fly", "flying": "fly",
	"hits": "hit", "hitting": "hit",
	"buys": "buy", "bought": "buy", "buying": "buy",
	"teaches": "teach", "taught": "teach", "teaching": "teach",
	"sells": "sell", "sold": "sell", "selling": "sell",
	"fights": "fight", "fought": "fight", "fighting": "fight",
	"sleeps": "sleep", "slept": "sleep", "sleeping": "sleep",
	"costs": "cost", "costing": "cost",
	"shuts": "shut", "shutting": "shut",
	"forgets": "forget", "forgot": "forget", "forgotten": "forget", "forgetting": "forget",
}

// variants derives candidate base forms for a lower-case word: the irregular
// table first, then every suffix rule whose stripped base keeps at least two
// characters. The word itself is not included.
func variants(word string) []string {
	var out []string
	if base, ok := irregulars[word]; ok {
		out = append(out, base)
	}
	for _, rule := range suffixRules {
		if !strings.HasSuffix(word, rule.suffix) {
			continue
		}
		base := word[:len(word)-len(rule.suffix)] + rule.replace
		if len(base) >= 2 {
			out = append(out, base)
		}
	}
	return out
}
