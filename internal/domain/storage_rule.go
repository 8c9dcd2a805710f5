package domain

type RuleType string

const (
	RuleTypeAllowed   RuleType = "allowed"
	RuleTypeForbidden RuleType = "forbidden"
)

// StorageRule is one allowed/forbidden item line shown on the FAQ page.
type StorageRule struct {
	ID        int32    `json:"id"`
	RuleType  RuleType `json:"rule_type"`
	Title     string   `json:"title"`
	IsActive  bool     `json:"is_active"`
	SortOrder int32    `json:"sort_order"`
}
