package crypto

// builtinWordLists are lowercase and free of duplicates.
var builtinWordLists = map[string][]string{
	"common": {
		"able", "acid", "aged", "also", "area", "army", "away", "baby", "back", "ball", "band", "bank",
		"base", "bath", "bear", "beat", "been", "beer", "bell", "belt", "best", "bill", "bird", "blow",
		"blue", "boat", "body", "bomb", "bond", "bone", "book", "boom", "born", "boss", "both", "bowl",
		"bulk", "burn", "bush", "busy", "cake", "call", "calm", "came", "camp", "card", "care", "case",
		"cash", "cast", "cell", "chat", "chip", "city", "club", "coal", "coat", "code", "cold", "come",
		"cook", "cool", "cope", "copy", "core", "cost", "crew", "crop", "dark", "data", "date", "dawn",
		"days", "dead", "deal", "dean", "dear", "debt", "deep", "deny", "desk", "dial", "diet", "disc",
		"disk", "does", "done", "door", "dose", "down", "draw", "drew", "drop", "drug", "dual", "duke",
		"dust", "duty", "each", "earn", "ease", "east", "easy", "edge", "else", "even", "ever", "exit",
		"face", "fact", "fail", "fair", "fall", "farm", "fast", "fate", "fear", "feed", "feel", "feet",
		"fell", "felt", "file", "fill", "film", "find", "fine", "fire", "firm", "fish", "five", "flat",
		"flow", "food", "foot", "ford", "form", "fort", "four", "free", "from", "fuel", "full", "fund",
		"gain", "game", "gate", "gave", "gear", "gene", "gift", "girl", "give", "glad", "goal", "goes",
		"gold", "golf", "gone", "good", "gray", "grew", "grey", "grow", "gulf", "hair", "half", "hall",
		"hand", "hang", "hard", "harm", "hate", "have", "head", "hear", "heat", "held", "hell", "help",
		"here", "hero", "high", "hill", "hire", "hold", "hole", "holy", "home", "hope", "host", "hour",
		"huge", "hung", "hunt", "hurt", "idea", "inch", "into", "iron", "item", "jack", "jane", "jean",
		"john", "join", "jump", "jury", "just", "keen", "keep", "kent", "kept", "kick", "kind", "king",
		"knee", "knew", "know", "lack", "lady", "laid", "lake", "land", "lane", "last", "late", "lead",
		"left", "less", "life", "lift", "like", "line", "link", "list", "live", "load", "loan", "lock",
		"logo", "long", "look", "lord", "lose", "loss", "lost", "love", "luck", "made", "mail", "main",
		"make", "male", "many", "mark", "mass", "matt", "meal", "mean", "meat", "meet", "menu", "mere",
		"mike", "mile", "milk", "mill", "mind", "mine", "miss", "mode", "mood", "moon", "more", "most",
		"move", "much", "must", "name", "navy", "near", "neck", "need", "news", "next", "nice", "nick",
		"nine", "none", "nose", "note", "okay", "once", "only", "onto", "open", "oral", "over", "pace",
		"pack", "page", "paid", "pain", "pair", "palm", "park", "part", "pass", "past", "path", "peak",
		"pick", "pink", "pipe", "plan", "play", "plot", "plug", "plus", "poll", "pool", "poor", "port",
		"post", "pull", "pure", "push", "race", "rail", "rain", "rank", "rare", "rate", "read", "real",
		"rear", "rely", "rent", "rest", "rice", "rich", "ride", "ring", "rise", "risk", "road", "rock",
		"role", "roll", "roof", "room", "root", "rose", "rule", "rush", "ruth", "safe", "sake", "sale",
		"salt", "same", "sand", "save", "seat", "seed", "seek", "seem", "seen", "self", "sell", "send",
		"sent", "sept", "ship", "shop", "shot", "show", "shut", "sick", "side", "sign", "site", "size",
		"skin", "slip", "slow", "snow", "soft", "soil", "sold", "sole", "some", "song", "soon", "sort",
		"soul", "spot", "star", "stay", "step", "stop", "such", "suit", "sure", "take", "tale", "talk",
		"tall", "tank", "tape", "task", "team", "tech", "tell", "tend", "term", "test", "text", "than",
		"that", "them", "then", "they", "thin", "this", "thus", "till", "time", "tiny", "told", "toll",
		"tone", "tony", "tour", "town", "tree", "trip", "true", "tune", "turn", "twin", "type", "unit",
		"upon", "used", "user", "vary", "vast", "very", "vice", "view", "vote", "wage", "wait", "wake",
		"walk", "wall", "want", "ward", "warm", "wash", "wave", "ways", "weak", "wear", "week", "well",
		"went", "were", "west", "what", "when", "whom", "wide", "wife", "wild", "will", "wind", "wine",
		"wing", "wire", "wise", "wish", "with", "wood", "word", "wore", "work", "yard", "yeah", "year",
		"your", "zero", "zone", "apple", "beach", "chair", "dance",
	},
	"animals": {
		"aardvark", "albatross", "alligator", "alpaca", "anteater", "antelope", "armadillo", "badger",
		"barracuda", "beaver", "bison", "bobcat", "buffalo", "butterfly", "camel", "canary", "caribou",
		"cheetah", "chicken", "chipmunk", "cobra", "cougar", "coyote", "crab", "crane", "cricket",
		"crocodile", "crow", "deer", "dingo", "dolphin", "donkey", "dove", "dragonfly", "duck", "eagle",
		"eel", "elephant", "elk", "emu", "falcon", "ferret", "finch", "flamingo", "fox", "frog",
		"gazelle", "gecko", "gerbil", "gibbon", "giraffe", "goat", "goose", "gorilla", "grasshopper",
		"hamster", "hare", "hawk", "hedgehog", "heron", "hippo", "hornet", "horse", "hyena", "ibis",
		"iguana", "impala", "jackal", "jaguar", "jellyfish", "kangaroo", "kiwi", "koala", "lemur",
		"leopard", "lion", "lizard", "llama", "lobster", "lynx", "macaw", "magpie", "manatee", "meerkat",
		"mink", "mole", "mongoose", "monkey", "moose", "mouse", "mule", "narwhal", "newt", "ocelot",
		"octopus", "opossum", "orca", "ostrich", "otter", "owl", "ox", "panda", "panther", "parrot",
		"peacock", "pelican", "penguin", "pheasant", "pig", "pigeon", "platypus", "porcupine", "possum",
		"puffin", "puma", "python", "quail", "rabbit", "raccoon", "raven", "reindeer", "rhino", "robin",
		"salmon", "scorpion", "seal", "shark", "sheep", "shrimp", "skunk", "sloth", "snail", "snake",
		"sparrow", "spider", "squid", "squirrel", "starling", "stork", "swan", "tapir", "tiger", "toad",
		"tortoise", "toucan", "trout", "turkey", "turtle", "viper", "vulture", "walrus", "wasp",
		"weasel", "whale", "wolf", "wombat", "woodpecker", "yak", "zebra",
	},
	"nature": {
		"acorn", "aurora", "autumn", "avalanche", "bamboo", "basin", "bay", "blossom", "bloom",
		"boulder", "branch", "breeze", "brook", "bush", "canyon", "cascade", "cave", "cedar", "cliff",
		"cloud", "clover", "coast", "comet", "coral", "cove", "creek", "crystal", "current", "cypress",
		"daisy", "delta", "desert", "dew", "dune", "dusk", "ember", "fern", "field", "fjord", "flame",
		"flora", "forest", "frost", "galaxy", "garden", "geyser", "glacier", "glade", "glen", "granite",
		"grass", "grove", "gust", "harbor", "harvest", "hazel", "heath", "hollow", "horizon", "ice",
		"island", "ivy", "jungle", "lagoon", "lava", "leaf", "lichen", "lightning", "lily", "maple",
		"marsh", "meadow", "mesa", "mist", "moss", "mountain", "nebula", "oak", "oasis", "ocean",
		"orchid", "pebble", "petal", "pine", "plain", "planet", "plateau", "pond", "prairie", "quartz",
		"rainbow", "rapids", "reef", "ridge", "river", "sapling", "savanna", "sequoia", "shore", "sky",
		"slope", "snowflake", "spring", "spruce", "storm", "stream", "summit", "sunrise", "sunset",
		"swamp", "thicket", "thunder", "tide", "timber", "tundra", "twilight", "valley", "volcano",
		"waterfall", "wave", "willow", "winter", "woodland", "zephyr",
	},
}
