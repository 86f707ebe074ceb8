package message

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

const eventTypeTopicBase = "persistent://public/default/event-type"

type (
	Topic              string
	TopicBuilderOption func(*topicBuilder)

	topicBuilder struct {
		baseName    string
		domain      string
		aggregate   string
		messageType string
		customTags  []string
	}
)

func (b *topicBuilder) Build() Topic {
	const separator = '.'

	sb := strings.Builder{}
	sb.WriteString(b.baseName)

	addTagIfNotEmpty := func(tag string) {
		if tag != "" {
			sb.WriteRune(separator)
			sb.WriteString(tag)
		}
	}

	addTagIfNotEmpty(b.domain)
	addTagIfNotEmpty(b.aggregate)
	addTagIfNotEmpty(b.messageType)
	for _, tag := range b.customTags {
		addTagIfNotEmpty(tag)
	}

	return Topic(sb.String())
}

func WithTopicDomainName(name string) TopicBuilderOption {
	name = strcase.ToKebab(name)
	return func(builder *topicBuilder) {
		builder.domain = fmt.Sprintf("%s-domain", name)
	}
}

func WithTopicAggregateName(name string) TopicBuilderOption {
	name = strcase.ToKebab(name)
	return func(builder *topicBuilder) {
		builder.aggregate = fmt.Sprintf("%s-aggregate", name)
	}
}

func WithTopicMessageType(msgType string) TopicBuilderOption {
	msgType = strcase.ToKebab(msgType)
	return func(builder *topicBuilder) {
		builder.messageType = msgType
	}
}

func WithTopicCustomTags(tags ...string) TopicBuilderOption {
	kebabTags := make([]string, 0, len(tags))
	for _, tag := range tags {
		kebabTags = append(kebabTags, strcase.ToKebab(tag))
	}

	return func(builder *topicBuilder) {
		builder.customTags = append(builder.customTags, kebabTags...)
	}
}

// NewTopic builds a dot separated topic name, the base name is used as is.
func NewTopic(baseName string, opts ...TopicBuilderOption) Topic {
	builder := topicBuilder{baseName: baseName}
	for _, opt := range opts {
		opt(&builder)
	}

	return builder.Build()
}

// NewEventTypeTopic is the topic every event of the given type is published to, whatever its stream.
func NewEventTypeTopic(eventType string) Topic {
	return NewTopic(eventTypeTopicBase, WithTopicMessageType(eventType))
}

// Subject strips the "scheme://tenant/namespace/" prefix of a persistent topic name.
func (t Topic) Subject() string {
	s := string(t)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+len("://"):]
		if j := strings.LastIndex(s, "/"); j >= 0 {
			s = s[j+1:]
		}
	}

	return s
}
