package nlptour

var languageSamples = []string{
	"cats",
	"Many cats like milk because in some ways it reminds them of their mother's milk.",
	"The two things are not really related. Many cats like milk because in " +
		"some ways it reminds them of their mother's milk.",
	"The two things are not really related. Many cats like milk because in some ways it reminds them of their mother's milk. " +
		"It is rich in fat and protein. They like the taste. They like the consistency . " +
		"The issue as far as it being bad for them is the fact that cats often have difficulty digesting milk and so it may give them " +
		"digestive upset like diarrhea, bloating and gas. After all, cow's milk is meant for baby calves, not cats. " +
		"It is a fortunate quirk of nature that human digestive systems can also digest cow's milk. But humans and cats are not cows.",
	"Many cats like milk because in some ways it reminds them of their " +
		"mother's milk. Le lait n'est pas forcément mauvais pour les chats",
	"Many cats like milk because in some ways it reminds them of their " +
		"mother's milk. Le lait n'est pas forcément mauvais pour les chats. " +
		"Der Normalfall ist allerdings der, dass Salonlöwen Milch weder brauchen " +
		"noch gut verdauen können.",
}

var tokenizationSamples = []string{
	"Since cats were venerated in ancient Egypt, they were commonly believed to have been domesticated there, " +
		"but there may have been instances of domestication as early as the Neolithic from around 9500 years ago (7500 BC).",
	"Since cats were venerated in ancient Egypt, they were commonly believed to have been domesticated there, " +
		"but there may have been instances of domestication as early as the Neolithic from around 9,500 years ago (7,500 BC).",
	"Since cats were venerated in ancient Egypt, they were commonly believed to have been domesticated there, " +
		"but there may have been instances of domestication as early as the Neolithic from around 9 500 years ago ( 7 500 BC).",
}

var japaneseTokenizationSamples = []string{
	"すもももももももものうち",
	"「顧客はドリルではなく穴が欲しい」とよく言われる。もう一歩進んで穴が必要なシチュエーションも考えてみましょう、と。",
	"人魚は、南の方の海にばかり棲んでいるのではありません。",
}

var sentenceSamples = []string{
	"Hi. How are you? Welcome to OpenNLP. " +
		"We provide multiple built-in methods for Natural Language Processing.",
	"Hi. How are you? Welcome to OpenNLP.?? " +
		"We provide multiple . built-in methods for Natural Language Processing.",
	"The interrobang, also known as the interabang (often represented by ?! or !?), " +
		"is a nonstandard punctuation mark used in various written languages. " +
		"It is intended to combine the functions of the question mark (?), or interrogative point, " +
		"and the exclamation mark (!), or exclamation point, known in the jargon of printers and programmers as a \"bang\". ",
}

var taggingSamples = [][]string{
	{"Cats", "like", "milk"},
	{"Cat", "is", "white", "like", "milk"},
	{"Hi", "How", "are", "you", "Welcome", "to", "OpenNLP", "We", "provide", "multiple",
		"built-in", "methods", "for", "Natural", "Language", "Processing"},
	{"She", "put", "the", "big", "knives", "on", "the", "table"},
}

var wordSample = []string{
	"Hi", "How", "are", "you", "Welcome", "to", "OpenNLP", "We", "provide", "multiple",
	"built-in", "methods", "for", "Natural", "Language", "Processing",
}

var chunkingSample = struct {
	words []string
	tags  []string
}{
	words: []string{"She", "put", "the", "big", "knives", "on", "the", "table"},
	tags:  []string{"PRP", "VBD", "DT", "JJ", "NNS", "IN", "DT", "NN"},
}

var nameFindingSample = "The idea of using computers to search for relevant pieces of information was popularized in the article " +
	"As We May Think by Vannevar Bush in 1945. It would appear that Bush was inspired by patents " +
	"for a 'statistical machine' - filed by Emanuel Goldberg in the 1920s and '30s - that searched for documents stored on film. " +
	"The first description of a computer searching for information was described by Holmstrom in 1948, " +
	"detailing an early mention of the Univac computer. Automated information retrieval systems were introduced in the 1950s: " +
	"one even featured in the 1957 romantic comedy, Desk Set. In the 1960s, the first large information retrieval research group " +
	"was formed by Gerard Salton at Cornell. By the 1970s several different retrieval techniques had been shown to perform " +
	"well on small text corpora such as the Cranfield collection (several thousand documents). Large-scale retrieval systems, " +
	"such as the Lockheed Dialog system, came into use early in the 1970s."
