package pubsub

import "strings"

type PrefixTopic struct {
	Prefix string
}

// Prefix matches the topic itself and anything below it, eg. Prefix("rfx")
// matches "rfx/52".
func Prefix(prefix string) *PrefixTopic {
	return &PrefixTopic{prefix}
}

func (t *PrefixTopic) Match(topic string) bool {
	return t.Prefix == topic || strings.HasPrefix(topic, t.Prefix+"/")
}

func (t *PrefixTopic) String() string {
	return t.Prefix + "/#"
}

type AllTopic struct{}

func All() *AllTopic {
	return &AllTopic{}
}

func (t *AllTopic) Match(topic string) bool {
	return true
}

func (t *AllTopic) String() string {
	return "#"
}

type ExactTopic struct {
	Exact string
}

func Exact(exact string) *ExactTopic {
	return &ExactTopic{exact}
}

func (t *ExactTopic) Match(topic string) bool {
	return t.Exact == topic
}

func (t *ExactTopic) String() string {
	return t.Exact
}

// Matches is true if any of topics matches topic.
func Matches(topics []Topic, topic string) bool {
	for _, t := range topics {
		if t.Match(topic) {
			return true
		}
	}
	return false
}

// Reports matches every decoded frame event.
func Reports() Topic {
	return Prefix(ReportPrefix)
}
