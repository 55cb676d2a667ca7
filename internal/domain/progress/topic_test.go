package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopics(t *testing.T) {
	topics := Topics()
	assert.Len(t, topics, TopicCount)

	for i, topic := range topics {
		assert.Equal(t, i, topic.Index)
		assert.Equal(t, i+1, topic.Day())
	}

	assert.Equal(t, "DAY 1", topics[0].DayLabel())
	assert.Equal(t, "What is Python, print, input/output", topics[0].Title())
	// Only the first separator splits the label.
	assert.Equal(t, "Mini project – calculator", topics[4].Title())
}

func TestTopicAt(t *testing.T) {
	topic, ok := TopicAt(19)
	assert.True(t, ok)
	assert.Equal(t, "Mini project – predict house prices", topic.Title())

	_, ok = TopicAt(20)
	assert.False(t, ok)
	_, ok = TopicAt(-1)
	assert.False(t, ok)
}
