package progress

import (
	"fmt"
	"strings"
)

// TopicCount is the fixed length of the curriculum.
const TopicCount = 20

// topicSeparator splits "Day N – title" into its day label and title.
const topicSeparator = " – "

// Topic is one fixed curriculum entry.
type Topic struct {
	Index int    // 0-based position, aligned with CompletionState
	Label string // Full entry, e.g. "Day 3 – If-else, loops"
}

// Day returns the 1-based day number.
func (t Topic) Day() int {
	return t.Index + 1
}

// DayLabel returns the card heading, e.g. "DAY 3".
func (t Topic) DayLabel() string {
	return fmt.Sprintf("DAY %d", t.Day())
}

// Title returns the part of the label after the day prefix.
func (t Topic) Title() string {
	if _, title, ok := strings.Cut(t.Label, topicSeparator); ok {
		return title
	}
	return t.Label
}

var topicLabels = [TopicCount]string{
	"Day 1 – What is Python, print, input/output",
	"Day 2 – Variables, data types, operators",
	"Day 3 – If-else, loops",
	"Day 4 – Functions",
	"Day 5 – Mini project – calculator",
	"Day 6 – Lists and tuples",
	"Day 7 – Dictionaries and sets",
	"Day 8 – Strings and loops",
	"Day 9 – Error handling",
	"Day 10 – Mini project – quiz or word counter",
	"Day 11 – NumPy basics",
	"Day 12 – Pandas (dataframes)",
	"Day 13 – Data filtering",
	"Day 14 – Matplotlib visualization",
	"Day 15 – CSV analysis mini-project",
	"Day 16 – What is Machine Learning",
	"Day 17 – Install Scikit-learn",
	"Day 18 – Linear regression example",
	"Day 19 – Decision Tree example",
	"Day 20 – Mini project – predict house prices",
}

// Topics returns the curriculum in day order.
func Topics() []Topic {
	topics := make([]Topic, TopicCount)
	for i, label := range topicLabels {
		topics[i] = Topic{Index: i, Label: label}
	}
	return topics
}

// TopicAt returns the topic for a 0-based index.
func TopicAt(index int) (Topic, bool) {
	if index < 0 || index >= TopicCount {
		return Topic{}, false
	}
	return Topic{Index: index, Label: topicLabels[index]}, true
}
