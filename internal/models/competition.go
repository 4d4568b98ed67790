// ABOUTME: Category and Competition models for the tennis event store.
// ABOUTME: Includes the row types returned by the competition query catalog.
package models

// CompetitionType values as delivered by the SportRadar competitions feed.
const (
	TypeSingles = "singles"
	TypeDoubles = "doubles"
	TypeMixed   = "mixed"
)

// Gender values as delivered by the SportRadar competitions feed.
const (
	GenderMen   = "men"
	GenderWomen = "women"
	GenderMixed = "mixed"
)

// Category is a classification grouping of competitions (e.g., tour level).
type Category struct {
	ID   string `json:"category_id"`
	Name string `json:"category_name"`
}

// Competition is a named tournament/event record, possibly nested under a
// parent competition. ParentID and CategoryID are nullable foreign keys.
type Competition struct {
	ID         string  `json:"competition_id"`
	Name       string  `json:"competition_name"`
	Type       string  `json:"type"`
	Gender     string  `json:"gender"`
	ParentID   *string `json:"parent_id,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

// IsTopLevel reports whether the competition has no parent.
func (c *Competition) IsTopLevel() bool {
	return c.ParentID == nil
}

// CompetitionWithCategory is a competition joined with its category name.
// CategoryName is nil for competitions without a category.
type CompetitionWithCategory struct {
	Competition
	CategoryName *string `json:"category_name"`
}

// CategoryCount is the number of competitions in a category. A nil
// CategoryName is the bucket for competitions without a category.
type CategoryCount struct {
	CategoryName *string `json:"category_name"`
	Competitions int     `json:"competition_count"`
}

// ParentChild is one parent/child competition pair from the hierarchy.
type ParentChild struct {
	ParentID   string `json:"parent_id"`
	ParentName string `json:"parent_name"`
	ChildID    string `json:"child_id"`
	ChildName  string `json:"child_name"`
}

// TypeCount is the number of competitions of one type within a category.
type TypeCount struct {
	CategoryName *string `json:"category_name"`
	Type         string  `json:"type"`
	Count        int     `json:"count"`
}
