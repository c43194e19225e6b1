package templates

import "checkpoint-bot/internal/domain"

const (
	Placeholder = "{comments}"
	signature   = "*⸻ 𝐓𝐡𝐞 𝐒𝐭𝐚𝐟𝐟 𝐓𝐞𝐚𝐦*"
)

var builtin = []domain.Template{
	{
		ID:   domain.TemplateAgeRejection,
		Name: "age_rejection",
		Skeleton: `> Thank you for submitting your RP sample!
> Unfortunately, we have a strict policy of
> not allowing minors to participate in this
> community. As such, we are unable to
> grant you access to the server at this time.
> 
> We wish you the best and encourage you to
> explore age-appropriate communities until
> you meet our age requirement. Thank you
> for understanding. Best regards,

` + signature,
	},
	{
		ID:   domain.TemplateFormatRejection,
		Name: "format_rejection",
		Skeleton: `> Thank you for submitting your RP sample!
> Unfortunately, we noticed that it was not
> submitted in a Google Document format,
> or that it is inaccessible. To proceed with
> your application, please make sure that:
> 
> - your sample is pasted in a Google Doc.
> - the document has the right permission:
>   - "anyone with the link can view."
> 
> Please reach out if you need assistance
> with sharing your sample. Best regards,

` + signature,
	},
	{
		ID:   domain.TemplateLiteracyRejection,
		Name: "literacy_rejection",
		Skeleton: `> Thank you for submitting your RP sample!
> Unfortunately, after careful review, we’ve
> determined that the sample does not meet
> our literacy standards. Thank you for your
> understanding, and we wish you the best
> in your roleplaying journey. Best regards,

` + signature,
	},
	{
		ID:   domain.TemplateSampleFixes,
		Name: "sample_fixes",
		Skeleton: `> Thank you for submitting your RP sample!
> We appreciate the effort you’ve put into it.
> However, after careful review, a few areas
> could be improved to better align with the
> literacy standards of our server. Before we
> approve your application, please review the
> RP sample requirement guide at the top of
> the channel, right under the pinned banner.
> 
> We encourage you to revise and resubmit
> your sample once you have addressed the
> fixes. If after careful revision you would like
> specific examples or further guidance, feel
> free to reach out—we’d be happy to help!
> Looking forward to reading your improved
> writing sample. Best regards,

` + signature,
	},
	{
		ID:   domain.TemplateSampleApproved,
		Name: "sample_approved",
		Skeleton: `> Thank you for submitting your RP sample!
> After careful review, we’re thrilled to let
> you know that it has been accepted. Your
> writing meets our literacy and creativity
> standards, and we’re excited to see you
> bring your characters to life in our server.
> 
> Before you continue, we suggest you pick
> your #❧・colors and #❧・roles, then
> greet everyone in the #❧・main﹒chat.
> We've prepared a [server guide](<https://docs.google.com/document/d/1jTfgXNh8guuxCgNGfAguUpDH9dZdamACisBYQvFs6oo/edit?usp=sharing>) to help
> you navigate the different categories with
> ease, and know each channel's purpose.
> 
> If you have any questions or need guidance,
> don’t hesitate to reach out. We can’t wait
> to roleplay with you! Best regards,

` + signature,
	},
	{
		ID:   domain.TemplateBioInconsistency,
		Name: "bio_inconsistency",
		Skeleton: `> Thank you for submitting your character.
> Unfortunately, after careful review, we've
> noticed that you either didn't follow the
> template instructions, or that you didn't
> take a good look at the server's lore. We
> strongly recommend revisiting the docs
> to familiarize yourself with everything.
> 
> Since the required information was not
> properly provided, we will not continue
> reading your bio until it's properly fixed.
> Please revise your bio accordingly and
> resubmit it for review. Should you have
> questions or require clarification, you
> may reach out. Best regards,

` + signature,
	},
	{
		ID:               domain.TemplateBioFixes,
		Name:             "bio_fixes",
		RequiresComments: true,
		Skeleton: `> Thank you for submitting your character.
> We appreciate the effort you've put into it.
> However, after careful review, there are
> some elements of your submission that
> need attention. Address them carefully:
> 
> ` + Placeholder + `
> 
> 
> We encourage you to revise and resubmit
> your character once you've addressed the
> fixes. If after careful revision you would like
> specific examples or further guidance, feel
> free to reach out—we'd be happy to help!
> Looking forward to reading your improved
> writing sample. Best regards,

` + signature,
	},
	{
		ID:   domain.TemplateBioApproved,
		Name: "bio_approved",
		Skeleton: `> Thank you for submitting your character!
> After careful review, we’re thrilled to let
> you know that they have been accepted.
> We found the bio to be well-aligned with
> our guidelines and lore; the OC fits well
> into the world we've created, and we’re
> excited to see them in action.
> 
> Before you continue, we suggest you
> remove your #✧・wanted﹒list post,
> if applicable, or that you talk with the
> person who posted the ad to bring it
> down. Take a look at our #✧・directory,
> and add your OC to the list. If you have
> any questions or need guidance, don’t
> hesitate to reach out. Best regards,

` + signature,
	},
}
