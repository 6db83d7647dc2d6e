// Package categorizer assigns a category to free-form note text.
//
// A user's own custom categories are checked first, then the fixed system
// table, by case-insensitive keyword containment. Custom categories are read
// through a process-wide cache that the category-write path invalidates
// explicitly. An optional AI refiner is consulted only when keywords land on
// the default category.
package categorizer

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/mindflowbot/mindflow/internal/models"
)

// Category is a system category with its display emoji.
type Category struct {
	Name     string
	Emoji    string
	Keywords []string
}

// DefaultCategory is assigned when nothing matches.
const DefaultCategory = "Other"

const (
	defaultEmoji = "📝"
	customEmoji  = "🔧"
)

// systemCategories are tried in this order; the default comes last and is
// never matched by keyword.
var systemCategories = []Category{
	{Name: "Tasks", Emoji: "📋", Keywords: []string{"need to", "to do", "have to", "meet", "send", "buy", "sign up", "call"}},
	{Name: "Ideas", Emoji: "💡", Keywords: []string{"idea", "could try", "would be cool", "what about", "interesting", "creative"}},
	{Name: "Questions", Emoji: "❓", Keywords: []string{"why", "how", "what if", "when", "where", "who", "?"}},
	{Name: "Worries", Emoji: "😰", Keywords: []string{"afraid", "worried", "anxious", "nervous", "fear", "stress", "unsure"}},
	{Name: "Facts", Emoji: "📚", Keywords: []string{"quote", "remember", "fact", "learned", "read that", "heard that"}},
	{Name: "Plans", Emoji: "🎯", Keywords: []string{"dream", "plan", "goal", "want to", "going to", "intend"}},
	{Name: DefaultCategory, Emoji: defaultEmoji},
}

// CategorySource supplies all custom categories for the cache.
type CategorySource interface {
	AllCustomCategories(ctx context.Context) ([]*models.CustomCategory, error)
}

// Refiner is an optional second opinion consulted when keywords find nothing.
type Refiner interface {
	Categorize(ctx context.Context, text string, categories []string) (string, error)
}

type customCategory struct {
	name     string
	keywords []string
}

type Categorizer struct {
	source  CategorySource
	refiner Refiner

	mu     sync.Mutex
	cache  map[int64][]customCategory
	loaded bool
}

// New builds a categorizer. refiner may be nil to disable the AI fallback.
func New(source CategorySource, refiner Refiner) *Categorizer {
	return &Categorizer{source: source, refiner: refiner}
}

// Categorize returns the category name and emoji for text.
func (c *Categorizer) Categorize(ctx context.Context, text string, userID int64) (string, string) {
	lowered := strings.ToLower(text)

	// User-defined categories take precedence over the system table.
	for _, custom := range c.customFor(ctx, userID) {
		if containsAny(lowered, custom.keywords) {
			return custom.name, customEmoji
		}
	}

	for _, cat := range systemCategories {
		if cat.Name == DefaultCategory {
			continue
		}
		if containsAny(lowered, cat.Keywords) {
			return cat.Name, cat.Emoji
		}
	}

	if c.refiner != nil {
		if name, ok := c.refine(ctx, text); ok {
			return name, emojiFor(name)
		}
	}
	return DefaultCategory, defaultEmoji
}

// Invalidate drops the custom-category cache. The category-write path calls
// this after every change.
func (c *Categorizer) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = false
}

// SystemCategories lists the fixed category table for display.
func SystemCategories() []Category {
	out := make([]Category, len(systemCategories))
	copy(out, systemCategories)
	return out
}

func emojiFor(name string) string {
	for _, cat := range systemCategories {
		if cat.Name == name {
			return cat.Emoji
		}
	}
	return defaultEmoji
}

func (c *Categorizer) customFor(ctx context.Context, userID int64) []customCategory {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.loaded {
		if err := c.loadLocked(ctx); err != nil {
			// Keyword categorization still works without custom categories.
			log.Printf("Failed to load custom categories: %v", err)
			return nil
		}
	}
	return c.cache[userID]
}

func (c *Categorizer) loadLocked(ctx context.Context) error {
	all, err := c.source.AllCustomCategories(ctx)
	if err != nil {
		return err
	}

	cache := make(map[int64][]customCategory)
	for _, cat := range all {
		var keywords []string
		for _, kw := range strings.Split(cat.Keywords, ",") {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		cache[cat.UserID] = append(cache[cat.UserID], customCategory{name: cat.Name, keywords: keywords})
	}
	c.cache = cache
	c.loaded = true
	return nil
}

func (c *Categorizer) refine(ctx context.Context, text string) (string, bool) {
	names := make([]string, len(systemCategories))
	for i, cat := range systemCategories {
		names[i] = cat.Name
	}
	name, err := c.refiner.Categorize(ctx, text, names)
	if err != nil {
		log.Printf("AI categorization failed, using default: %v", err)
		return "", false
	}
	return name, true
}

func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
