package categorizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindflowbot/mindflow/internal/models"
)

type stubSource struct {
	categories []*models.CustomCategory
	err        error
	loads      int
}

func (s *stubSource) AllCustomCategories(context.Context) ([]*models.CustomCategory, error) {
	s.loads++
	return s.categories, s.err
}

type stubRefiner struct {
	name  string
	err   error
	calls int
}

func (s *stubRefiner) Categorize(context.Context, string, []string) (string, error) {
	s.calls++
	return s.name, s.err
}

func TestCategorizeSystemKeywords(t *testing.T) {
	c := New(&stubSource{}, nil)
	ctx := context.Background()

	cases := map[string]string{
		"need to buy groceries":            "Tasks",
		"idea for a side project":          "Ideas",
		"why does this keep happening?":    "Questions",
		"worried about the deadline":       "Worries",
		"learned that bees sleep":          "Facts",
		"plan a trip to the mountains":     "Plans",
		"just some rambling with no hooks": DefaultCategory,
	}
	for text, want := range cases {
		name, _ := c.Categorize(ctx, text, 1)
		assert.Equal(t, want, name, "text %q", text)
	}
}

func TestCategorizeCustomTakesPrecedence(t *testing.T) {
	source := &stubSource{categories: []*models.CustomCategory{
		{UserID: 1, Name: "Work", Keywords: "standup, deploy, Jira"},
	}}
	c := New(source, nil)
	ctx := context.Background()

	// "need to" would hit Tasks, but the custom keyword wins.
	name, emoji := c.Categorize(ctx, "need to fix the Jira board", 1)
	assert.Equal(t, "Work", name)
	assert.Equal(t, "🔧", emoji)

	// Another user's text is not affected by user 1's categories.
	name, _ = c.Categorize(ctx, "need to fix the jira board", 2)
	assert.Equal(t, "Tasks", name)
}

func TestCategorizeCacheAndInvalidate(t *testing.T) {
	source := &stubSource{}
	c := New(source, nil)
	ctx := context.Background()

	c.Categorize(ctx, "anything", 1)
	c.Categorize(ctx, "anything else", 1)
	assert.Equal(t, 1, source.loads, "cache should serve the second call")

	source.categories = []*models.CustomCategory{
		{UserID: 1, Name: "Music", Keywords: "guitar"},
	}
	c.Invalidate()

	name, _ := c.Categorize(ctx, "practice guitar", 1)
	assert.Equal(t, "Music", name)
	assert.Equal(t, 2, source.loads)
}

func TestCategorizeSourceFailureFallsBackToKeywords(t *testing.T) {
	source := &stubSource{err: errors.New("db down")}
	c := New(source, nil)

	name, _ := c.Categorize(context.Background(), "need to call the bank", 1)
	assert.Equal(t, "Tasks", name)
}

func TestCategorizeRefinerOnlyForDefault(t *testing.T) {
	refiner := &stubRefiner{name: "Plans"}
	c := New(&stubSource{}, refiner)
	ctx := context.Background()

	// Keyword hit: refiner never consulted.
	name, _ := c.Categorize(ctx, "need to water the plants", 1)
	assert.Equal(t, "Tasks", name)
	assert.Zero(t, refiner.calls)

	// No keyword hit: refiner decides.
	name, emoji := c.Categorize(ctx, "someday, the sea", 1)
	assert.Equal(t, "Plans", name)
	assert.Equal(t, "🎯", emoji)
	assert.Equal(t, 1, refiner.calls)
}

func TestCategorizeRefinerErrorMeansDefault(t *testing.T) {
	c := New(&stubSource{}, &stubRefiner{err: errors.New("timeout")})

	name, emoji := c.Categorize(context.Background(), "someday, the sea", 1)
	assert.Equal(t, DefaultCategory, name)
	assert.Equal(t, "📝", emoji)
}
