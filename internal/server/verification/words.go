package verification

// wordList is the dictionary for verification codes. Short, common,
// unambiguous words keep transcription errors down.
var wordList = []string{
	"acid", "apple", "arrow", "badge", "bald", "barn", "bean", "bear",
	"bell", "bird", "blue", "boat", "bone", "book", "bow", "bread",
	"brick", "broom", "cake", "calm", "camp", "card", "cave", "chair",
	"chalk", "cheese", "chess", "cliff", "clock", "cloud", "coal", "coin",
	"cold", "comet", "coral", "cord", "corn", "crane", "crow", "cup",
	"dawn", "deer", "dew", "dish", "dome", "door", "dove", "drum",
	"dusk", "dust", "eagle", "earth", "elm", "fern", "fig", "fire",
	"fish", "flag", "flute", "fog", "fork", "fox", "frog", "frost",
	"gate", "gem", "glass", "goat", "gold", "grain", "grape", "green",
	"hail", "harp", "hawk", "hill", "hive", "horn", "ice", "iron",
	"ivy", "jade", "jar", "kite", "lake", "lamp", "leaf", "lime",
	"lion", "log", "loom", "map", "mast", "mint", "moon", "moss",
	"moth", "nest", "north", "oak", "oat", "onion", "owl", "palm",
	"pear", "pine", "plum", "pond", "rain", "red", "reed", "ring",
	"river", "rock", "rope", "rose", "salt", "sand", "seal", "shell",
	"silk", "snow", "star", "stone", "swan", "tide", "vine", "wolf",
}
