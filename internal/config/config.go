// Package config holds the static category profile: the tracked life
// categories, their weights, and the activities that can be logged against
// them. The profile is loaded once at startup and is read-only afterwards.
package config

import "sort"

// Activity is a loggable action within a category.
type Activity struct {
	Key           string
	Name          string
	Unit          string
	ImpactPerUnit float64
}

// Category is a tracked life area with a weight and a set of activities.
// Weights are non-negative and are not required to sum to 1.
type Category struct {
	Key        string
	Name       string
	Weight     float64
	Activities map[string]Activity
}

// Config is the full category profile.
type Config struct {
	categories map[string]Category
	keys       []string
}

// New builds a Config from a set of categories.
// Category iteration order is sorted by key for deterministic output.
func New(categories []Category) *Config {
	c := &Config{categories: make(map[string]Category, len(categories))}
	for _, cat := range categories {
		c.categories[cat.Key] = cat
	}
	for key := range c.categories {
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)
	return c
}

// Keys returns all category keys in sorted order.
func (c *Config) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of configured categories.
func (c *Config) Len() int {
	return len(c.keys)
}

// Category looks up a category by key.
func (c *Config) Category(key string) (Category, bool) {
	cat, ok := c.categories[key]
	return cat, ok
}

// Activity looks up an activity by category and activity key.
func (c *Config) Activity(categoryKey, activityKey string) (Activity, bool) {
	cat, ok := c.categories[categoryKey]
	if !ok {
		return Activity{}, false
	}
	act, ok := cat.Activities[activityKey]
	return act, ok
}

// ActivityKeys returns the sorted activity keys for a category.
// Returns nil for an unknown category.
func (c *Config) ActivityKeys(categoryKey string) []string {
	cat, ok := c.categories[categoryKey]
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(cat.Activities))
	for key := range cat.Activities {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
