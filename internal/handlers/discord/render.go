package discord

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/siptally/internal/models"
	"github.com/KirkDiggler/siptally/internal/services/messaging"
	"github.com/KirkDiggler/siptally/internal/services/tally"
	"github.com/bwmarrin/discordgo"
)

// renderNotice renders a single ephemeral embed
func renderNotice(title, description string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       title,
				Description: description,
				Color:       colorGreen,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

// renderProfileChooser renders the current profile with a button per profile
func renderProfileChooser(current models.Profile) *discordgo.InteractionResponseData {
	description := "You haven't chosen a profile yet. Safe limits depend on it."
	if current.IsSet() {
		description = fmt.Sprintf("Your limits are based on the **%s** profile.", profileLabel(current))
	}

	buttons := []discordgo.MessageComponent{}
	for _, profile := range []models.Profile{models.ProfileA, models.ProfileB} {
		style := discordgo.SecondaryButton
		if profile == current {
			style = discordgo.PrimaryButton
		}
		buttons = append(buttons, discordgo.Button{
			Label:    profileLabel(profile),
			Style:    style,
			CustomID: ButtonSetProfile + string(profile),
		})
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Profile",
				Description: description,
				Color:       colorBlue,
			},
		},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

// renderProfileSet confirms a profile choice
func renderProfileSet(profile models.Profile) *discordgo.InteractionResponseData {
	response := renderNotice("Profile saved", fmt.Sprintf("Your limits are now based on the **%s** profile.", profileLabel(profile)))
	// Clears the buttons when replacing the chooser
	response.Components = []discordgo.MessageComponent{}
	return response
}

// renderDrinkLogged renders the confirmation and, when a limit was crossed, a red warning
func renderDrinkLogged(logged *tally.LogDrinkOutput, confirmation string, warning *messaging.GetLimitWarningMessageOutput) *discordgo.InteractionResponseData {
	var fields []*discordgo.MessageEmbedField

	if logged.Guideline != nil && logged.Crossing != nil {
		limit := "no limit"
		if logged.Crossing.LimitML != models.NoLimit {
			limit = fmt.Sprintf("%d ml", logged.Crossing.LimitML)
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   logged.Guideline.Label,
			Value:  fmt.Sprintf("%d ml / %s", logged.Crossing.ActualML, limit),
			Inline: true,
		})
	}

	if strength := strings.TrimSpace(logged.Entry.AlcoholPercentage + " " + logged.Entry.Style); logged.Entry.HasProduct() && strength != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Strength",
			Value:  strength,
			Inline: true,
		})
	}

	embeds := []*discordgo.MessageEmbed{
		{
			Title:       fmt.Sprintf("%s logged", logged.Entry.DisplayName()),
			Description: confirmation,
			Color:       colorGreen,
			Fields:      fields,
		},
	}

	if warning != nil {
		embeds = append(embeds, &discordgo.MessageEmbed{
			Title:       "⚠️ " + warning.Title,
			Description: warning.Message,
			Color:       colorRed,
			Footer: &discordgo.MessageEmbedFooter{
				Text: warning.Advice,
			},
		})
	}

	undoButton := discordgo.Button{
		Label:    "Undo",
		Style:    discordgo.SecondaryButton,
		CustomID: ButtonUndoDrink + logged.Entry.ID,
		Emoji: &discordgo.ComponentEmoji{
			Name: "↩️",
		},
	}

	return &discordgo.InteractionResponseData{
		Embeds: embeds,
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{undoButton}},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

// renderLog renders the drinks of the current session in logging order
func renderLog(logOutput *tally.GetLogOutput, labels map[models.GuidelineBucket]string) *discordgo.InteractionResponseData {
	var lines strings.Builder
	for n, logEntry := range logOutput.Entries {
		entry := logEntry.Entry
		fmt.Fprintf(&lines, "`#%d` %s · %d ml · %s", n+1, entry.DisplayName(), entry.VolumeML, entry.Timestamp.Format("15:04"))
		if logEntry.Classified {
			fmt.Fprintf(&lines, " · %s", labels[logEntry.Bucket])
		}
		lines.WriteString("\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Today's drinks",
		Description: lines.String(),
		Color:       colorBlue,
	}

	if logOutput.Summary != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d drinks · %d ml in total", logOutput.Summary.EntryCount, logOutput.Summary.TotalML),
		}
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
		Flags:  discordgo.MessageFlagsEphemeral,
	}
}

// renderSummary renders the totals for every guideline
func renderSummary(summary *tally.GetSummaryOutput) *discordgo.InteractionResponseData {
	color := colorGreen
	var fields []*discordgo.MessageEmbedField

	for _, status := range summary.Buckets {
		value := fmt.Sprintf("%d ml", status.ActualML)
		if status.Result != nil && status.Result.LimitML != models.NoLimit {
			value = fmt.Sprintf("%d / %d ml", status.ActualML, status.Result.LimitML)
			if status.Result.Crossed {
				value += " ⚠️"
				color = colorRed
			}
		}

		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   status.Guideline.Label,
			Value:  value,
			Inline: true,
		})
	}

	if summary.Summary.UnclassifiedBeerML > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Other beers",
			Value:  fmt.Sprintf("%d ml", summary.Summary.UnclassifiedBeerML),
			Inline: true,
		})
	}

	description := ""
	if summary.Profile.IsSet() {
		description = fmt.Sprintf("Limits for the **%s** profile.", profileLabel(summary.Profile))
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Summary",
				Description: description,
				Color:       color,
				Fields:      fields,
				Footer: &discordgo.MessageEmbedFooter{
					Text: fmt.Sprintf("%d drinks · %d ml in total", summary.Summary.EntryCount, summary.Summary.TotalML),
				},
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

// renderGuidelines renders the guideline table, highlighting the user's profile
func renderGuidelines(output *tally.ListGuidelinesOutput) *discordgo.InteractionResponseData {
	var fields []*discordgo.MessageEmbedField
	for _, g := range output.Guidelines {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%s)", g.Label, g.Range),
			Value:  formatLimits(g, output.Profile),
			Inline: true,
		})
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Safe intake guidelines",
				Description: "Recommended maximum per day.",
				Color:       colorBlue,
				Fields:      fields,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

// renderProducts renders the known beers with the guideline they fall under
func renderProducts(output *tally.ListProductsOutput, labels map[models.GuidelineBucket]string) *discordgo.InteractionResponseData {
	var lines strings.Builder
	for _, info := range output.Products {
		bucket := "no guideline"
		if info.Classified {
			bucket = labels[info.Bucket]
		}
		fmt.Fprintf(&lines, "**%s** · %s %s · %s\n", info.Product.Name, info.Product.AlcoholPercentage, info.Product.Style, bucket)
	}

	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{
			{
				Title:       "Beers",
				Description: lines.String(),
				Color:       colorAmber,
			},
		},
		Flags: discordgo.MessageFlagsEphemeral,
	}
}

func formatLimits(g *models.Guideline, profile models.Profile) string {
	if !g.HasLimit(models.ProfileA) && !g.HasLimit(models.ProfileB) {
		return "No limit"
	}

	male := fmt.Sprintf("Male: %d ml", g.LimitA)
	female := fmt.Sprintf("Female: %d ml", g.LimitB)
	switch profile {
	case models.ProfileA:
		male = "**" + male + "**"
	case models.ProfileB:
		female = "**" + female + "**"
	}

	return male + "\n" + female
}

func profileLabel(profile models.Profile) string {
	switch profile {
	case models.ProfileA:
		return "Male"
	case models.ProfileB:
		return "Female"
	default:
		return "Not set"
	}
}
