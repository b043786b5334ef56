package keywords

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var EnglishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "almost", "alone", "along",
	"already", "also", "although", "always", "am", "among", "an", "and", "another", "any",
	"anyone", "anything", "are", "around", "as", "at", "back", "be", "became", "because",
	"become", "been", "before", "being", "below", "between", "both", "but", "by", "can",
	"cannot", "could", "did", "do", "does", "doing", "done", "down", "during", "each",
	"either", "else", "enough", "even", "ever", "every", "everyone", "everything", "few",
	"for", "from", "further", "get", "give", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "however", "i", "if", "in",
	"indeed", "into", "is", "it", "its", "itself", "just", "keep", "last", "least", "less",
	"made", "many", "may", "me", "meanwhile", "might", "mine", "more", "moreover", "most",
	"mostly", "much", "must", "my", "myself", "neither", "never", "nevertheless", "next",
	"no", "nobody", "none", "nor", "not", "nothing", "now", "of", "off", "often", "on",
	"once", "one", "only", "onto", "or", "other", "others", "otherwise", "our", "ours",
	"ourselves", "out", "over", "own", "per", "perhaps", "please", "put", "rather", "re",
	"same", "see", "seem", "seemed", "seems", "several", "she", "should", "since", "so",
	"some", "someone", "something", "sometime", "sometimes", "still", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then", "there", "therefore",
	"these", "they", "this", "those", "though", "through", "thus", "to", "together", "too",
	"toward", "towards", "under", "until", "up", "upon", "us", "very", "via", "was", "we",
	"well", "were", "what", "whatever", "when", "where", "whether", "which", "while", "who",
	"whole", "whom", "whose", "why", "will", "with", "within", "without", "would", "yet",
	"you", "your", "yours", "yourself", "yourselves",
}

// StopWordConfig is the shape of a STOP_WORDS_FILE.
//
//	replace_defaults: false
//	stop_words:
//	  - hospital
//	  - patient
type StopWordConfig struct {
	ReplaceDefaults bool     `yaml:"replace_defaults"`
	StopWords       []string `yaml:"stop_words"`
}

// LoadStopWords reads a YAML stop-word file and merges it with the English
// defaults unless replace_defaults is set.
func LoadStopWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[Keywords] failed to read stop words file: %w", err)
	}

	var cfg StopWordConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("[Keywords] failed to parse stop words file: %w", err)
	}

	if cfg.ReplaceDefaults {
		return cfg.StopWords, nil
	}
	words := make([]string, 0, len(EnglishStopWords)+len(cfg.StopWords))
	words = append(words, EnglishStopWords...)
	return append(words, cfg.StopWords...), nil
}
