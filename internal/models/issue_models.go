package models

import (
	"encoding/json"
	"fmt"
)

// IssueCategory is the coarse complaint bucket a feedback item falls into.
// The declaration order is the rule precedence and the tie-break order.
type IssueCategory int

const (
	IssueWaitingTime IssueCategory = iota
	IssueCleanliness
	IssueGeneral
)

var issueNames = [...]string{
	IssueWaitingTime: "Waiting Time",
	IssueCleanliness: "Cleanliness",
	IssueGeneral:     "General",
}

var issuePhrases = [...]string{
	IssueWaitingTime: "Waiting Time Issue",
	IssueCleanliness: "Cleanliness Issue",
	IssueGeneral:     "General Feedback",
}

// AllIssueCategories lists every category in precedence order.
func AllIssueCategories() []IssueCategory {
	return []IssueCategory{IssueWaitingTime, IssueCleanliness, IssueGeneral}
}

func (c IssueCategory) Valid() bool {
	return c >= IssueWaitingTime && c <= IssueGeneral
}

func (c IssueCategory) String() string {
	if !c.Valid() {
		return fmt.Sprintf("IssueCategory(%d)", int(c))
	}
	return issueNames[c]
}

// Phrase is the wording used inside a smart note.
func (c IssueCategory) Phrase() string {
	if !c.Valid() {
		return c.String()
	}
	return issuePhrases[c]
}

func (c IssueCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *IssueCategory) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for _, candidate := range AllIssueCategories() {
		if candidate.String() == name {
			*c = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown issue category %q", name)
}
