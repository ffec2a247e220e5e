package discord

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmbed struct {
	value any
	err   error
}

func (s stubEmbed) Build() (any, error) {
	return s.value, s.err
}

type stubComponent struct {
	value any
	err   error
}

func (s stubComponent) Build() (any, error) {
	return s.value, s.err
}

type stubFlags int

func (f stubFlags) Value() int {
	return int(f)
}

func TestMessageBuilder_Build(t *testing.T) {
	tests := []struct {
		name     string
		opts     []MessageOption
		expected Message
	}{
		{
			name:     "nothing set",
			opts:     nil,
			expected: Message{},
		},
		{
			name:     "content only",
			opts:     []MessageOption{WithContent("hi")},
			expected: Message{"content": "hi"},
		},
		{
			name:     "empty content is present",
			opts:     []MessageOption{WithContent("")},
			expected: Message{"content": ""},
		},
		{
			name:     "empty embeds list is present",
			opts:     []MessageOption{WithEmbeds()},
			expected: Message{"embeds": []any{}},
		},
		{
			name:     "empty components list is present",
			opts:     []MessageOption{WithComponents()},
			expected: Message{"components": []any{}},
		},
		{
			name:     "embed output embedded as is",
			opts:     []MessageOption{WithEmbeds(stubEmbed{value: map[string]any{"title": "t"}})},
			expected: Message{"embeds": []any{map[string]any{"title": "t"}}},
		},
		{
			name:     "flags value",
			opts:     []MessageOption{WithFlags(NewDiscordMessageFlags().SetEphemeral())},
			expected: Message{"flags": 64},
		},
		{
			name:     "zero flags still present",
			opts:     []MessageOption{WithFlags(stubFlags(0))},
			expected: Message{"flags": 0},
		},
		{
			name:     "nil flags stay absent",
			opts:     []MessageOption{WithFlags(nil)},
			expected: Message{},
		},
		{
			name:     "nil flags pointer stays absent",
			opts:     []MessageOption{WithFlags((*DiscordMessageFlags)(nil))},
			expected: Message{},
		},
		{
			name: "all fields",
			opts: []MessageOption{
				WithContent("hello"),
				WithEmbeds(stubEmbed{value: "e"}),
				WithComponents(stubComponent{value: "c"}),
				WithFlags(stubFlags(4)),
			},
			expected: Message{
				"content":    "hello",
				"embeds":     []any{"e"},
				"components": []any{"c"},
				"flags":      4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, err := NewMessageBuilder(tt.opts...).Build()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, message)
		})
	}
}

func TestMessageBuilder_PreservesOrder(t *testing.T) {
	builder := NewMessageBuilder(
		WithEmbeds(stubEmbed{value: 1}, stubEmbed{value: 2}, stubEmbed{value: 3}),
		WithComponents(stubComponent{value: "a"}, stubComponent{value: "b"}),
	)

	message, err := builder.Build()
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2, 3}, message[FieldEmbeds])
	assert.Equal(t, []any{"a", "b"}, message[FieldComponents])
}

func TestMessageBuilder_OnlyPresentKeys(t *testing.T) {
	message, err := NewMessageBuilder(WithContent("x"), WithFlags(stubFlags(1))).Build()
	require.NoError(t, err)

	assert.Len(t, message, 2)
	assert.NotContains(t, message, FieldEmbeds)
	assert.NotContains(t, message, FieldComponents)
}

func TestMessageBuilder_Idempotent(t *testing.T) {
	builder := NewMessageBuilder(
		WithContent("again"),
		WithEmbeds(NewDiscordEmbedBuilder().WithTitle("t").Build()),
		WithFlags(NewDiscordMessageFlags().SetSuppressEmbeds()),
	)

	first, err := builder.Build()
	require.NoError(t, err)
	second, err := builder.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMessageBuilder_PropagatesErrorsUnchanged(t *testing.T) {
	embedErr := errors.New("bad embed")
	componentErr := errors.New("bad component")

	message, err := NewMessageBuilder(
		WithContent("x"),
		WithEmbeds(stubEmbed{value: "ok"}, stubEmbed{err: embedErr}),
	).Build()
	assert.Nil(t, message)
	assert.Same(t, embedErr, err)

	message, err = NewMessageBuilder(WithComponents(stubComponent{err: componentErr})).Build()
	assert.Nil(t, message)
	assert.Same(t, componentErr, err)
}

func TestMessage_JSON(t *testing.T) {
	message, err := NewMessageBuilder(WithContent("hi"), WithEmbeds()).Build()
	require.NoError(t, err)

	data, err := message.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"content":"hi","embeds":[]}`, string(data))
}
