package command

import (
	"checkpoint-bot/internal/domain"
)

const (
	CheckpointMinor    = "checkpoint_minor"
	CheckpointFormat   = "checkpoint_format"
	CheckpointLiteracy = "checkpoint_literacy"
	CheckpointFixes    = "checkpoint_fixes"
	CheckpointApproved = "checkpoint_approved"
	BioInconsistency   = "bio_inconsistency"
	BioFixes           = "bio_fixes"
	BioApproved        = "bio_approved"
)

// Descriptor is everything that distinguishes one review command from another.
type Descriptor struct {
	Name        string
	Description string
	Template    domain.TemplateID
	Comments    bool
	Transition  *domain.RoleTransition
}

type RolesConfig struct {
	Member            string `env:"ROLE_MEMBER"`
	AgeVerified       string `env:"ROLE_AGE_VERIFIED"`
	PendingReview     string `env:"ROLE_PENDING_REVIEW"`
	CharacterApproved string `env:"ROLE_CHARACTER_APPROVED"`
	BioPending        string `env:"ROLE_BIO_PENDING"`
}

func Descriptors(roles RolesConfig) []Descriptor {
	return []Descriptor{
		{
			Name:        CheckpointMinor,
			Description: "Denies access to underage users",
			Template:    domain.TemplateAgeRejection,
		},
		{
			Name:        CheckpointFormat,
			Description: "Denies access to user because of wrong RP sample format or invalid access",
			Template:    domain.TemplateFormatRejection,
		},
		{
			Name:        CheckpointLiteracy,
			Description: "Denies access to user because of insufficient literacy",
			Template:    domain.TemplateLiteracyRejection,
		},
		{
			Name:        CheckpointFixes,
			Description: "Denies access to user because of needed fixes in RP sample",
			Template:    domain.TemplateSampleFixes,
		},
		{
			Name:        CheckpointApproved,
			Description: "Allows access to user and changes user roles",
			Template:    domain.TemplateSampleApproved,
			Transition:  transition(roles.PendingReview, roles.Member, roles.AgeVerified),
		},
		{
			Name:        BioInconsistency,
			Description: "Denies bio approval because user didn't follow instructions or didn't read RP info",
			Template:    domain.TemplateBioInconsistency,
		},
		{
			Name:        BioFixes,
			Description: "Denies bio approval because fixes are to be made. Include fixes in up to 5 comments",
			Template:    domain.TemplateBioFixes,
			Comments:    true,
		},
		{
			Name:        BioApproved,
			Description: "Approves bio and changes user roles",
			Template:    domain.TemplateBioApproved,
			Transition:  transition(roles.BioPending, roles.CharacterApproved),
		},
	}
}

// transition drops unset role ids; a command with nothing left to change
// posts its template only.
func transition(remove string, add ...string) *domain.RoleTransition {
	t := domain.RoleTransition{Remove: remove}
	for _, id := range add {
		if id != "" {
			t.Add = append(t.Add, id)
		}
	}

	if t.IsZero() {
		return nil
	}
	return &t
}
