package domain

import "strings"

type TemplateID int

const (
	TemplateAgeRejection TemplateID = iota + 1
	TemplateFormatRejection
	TemplateLiteracyRejection
	TemplateSampleFixes
	TemplateSampleApproved
	TemplateBioInconsistency
	TemplateBioFixes
	TemplateBioApproved
)

type Template struct {
	ID               TemplateID
	Name             string
	Skeleton         string
	RequiresComments bool
}

type Member struct {
	ID      string
	Mention string
	Name    string
	Roles   []string
}

// RoleTransition is applied to every pinged member of an approval command.
// An empty Remove means nothing is revoked.
type RoleTransition struct {
	Add    []string
	Remove string
}

func (t RoleTransition) IsZero() bool {
	return len(t.Add) == 0 && t.Remove == ""
}

type Outcome struct {
	Successes []string
	Failures  []string
}

func (o *Outcome) Success(entry string) {
	o.Successes = append(o.Successes, entry)
}

func (o *Outcome) Failure(entry string) {
	o.Failures = append(o.Failures, entry)
}

func (o Outcome) Len() int {
	return len(o.Successes) + len(o.Failures)
}

// Report renders the summary sent privately to the invoker.
func (o Outcome) Report() string {
	var b strings.Builder

	if len(o.Successes) > 0 {
		b.WriteString("Roles updated successfully for:\n")
		b.WriteString(strings.Join(o.Successes, "\n"))
	} else {
		b.WriteString("No roles were updated successfully.")
	}

	if len(o.Failures) > 0 {
		b.WriteString("\n\nFailed to update roles for:\n")
		b.WriteString(strings.Join(o.Failures, "\n"))
	}

	return b.String()
}
