// Package tags implements the saved-tag management under /bs tags.
package tags

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"clubkeeper/brawlapi"
	"clubkeeper/model"
	"clubkeeper/utils"
	"clubkeeper/utils/database"

	"github.com/bwmarrin/discordgo"
)

// Handle routes the /bs tags subcommand group.
func Handle(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	group := i.ApplicationCommandData().Options[0]
	sub := group.Options[0]
	opts := utils.OptionMap(sub.Options)

	switch sub.Name {
	case "save":
		handleSave(b, s, i, opts)
	case "list":
		handleList(b, s, i)
	case "setdefault":
		handleSetDefault(b, s, i, opts)
	case "move":
		handleMove(b, s, i, opts)
	case "remove":
		handleRemove(b, s, i, opts)
	default:
		utils.SendErrorResponse(s, i, "Unknown subcommand.")
	}
}

func handleSave(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	tag := brawlapi.NormalizeTag(utils.OptionString(opts, "tag"))
	userID := utils.InteractionUserID(i)

	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("tags: deferring response: %v", err)
		return
	}

	// The tag must belong to a real player before it is saved.
	p, err := b.GetAPI().Player(tag)
	if err != nil {
		log.Printf("tags: validating %s: %v", brawlapi.PrettyTag(tag), err)
		utils.SendFollowUpError(s, i.Interaction, utils.APIErrorMessage(err, "Player"))
		return
	}

	if err := database.AddUserTag(b.GetDB(), userID, tag); err != nil {
		switch {
		case errors.Is(err, database.ErrTagExists):
			utils.SendFollowUpError(s, i.Interaction, "You already saved that tag.")
		case errors.Is(err, database.ErrTagLimit):
			utils.SendFollowUpError(s, i.Interaction,
				fmt.Sprintf("You can save at most %d tags. Remove one first with `/bs tags remove`.", model.MaxSavedTags))
		default:
			log.Printf("tags: %v", err)
			utils.SendFollowUpError(s, i.Interaction, "Could not save the tag.")
		}
		return
	}

	if err := database.CacheUserPlayer(b.GetDB(), userID, p.Name, brawlapi.NormalizeTag(p.Club.Tag)); err != nil {
		log.Printf("tags: %v", err)
	}

	utils.SendFollowUp(s, i.Interaction,
		fmt.Sprintf("✅ Saved `%s` (**%s**).", brawlapi.PrettyTag(tag), p.Name))
}

func handleList(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	rec, err := database.GetUser(b.GetDB(), utils.InteractionUserID(i))
	if err != nil {
		log.Printf("tags: %v", err)
		utils.SendErrorResponse(s, i, "Could not load your saved tags.")
		return
	}
	if len(rec.Tags) == 0 {
		utils.SendSimpleResponse(s, i, "You have no saved tags. Add one with `/bs tags save`.")
		return
	}

	var sb strings.Builder
	def := rec.DefaultTag()
	for idx, tag := range rec.Tags {
		marker := " "
		if tag == def {
			marker = "⭐"
		}
		fmt.Fprintf(&sb, "`%d.` %s `%s`\n", idx+1, marker, brawlapi.PrettyTag(tag))
	}

	utils.RespondEmbed(s, i, &discordgo.MessageEmbed{
		Title:       "Your Saved Tags",
		Description: sb.String(),
		Color:       utils.ColorAccent,
	})
}

func handleSetDefault(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	index := utils.OptionInt(opts, "index", 1) - 1
	userID := utils.InteractionUserID(i)

	rec, err := database.GetUser(b.GetDB(), userID)
	if err != nil {
		log.Printf("tags: %v", err)
		utils.SendErrorResponse(s, i, "Could not load your saved tags.")
		return
	}
	if index < 0 || index >= len(rec.Tags) {
		utils.SendErrorResponse(s, i, "No saved tag at that position.")
		return
	}

	rec.DefaultIndex = index
	if err := database.SaveUser(b.GetDB(), rec); err != nil {
		log.Printf("tags: %v", err)
		utils.SendErrorResponse(s, i, "Could not update your default tag.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("⭐ Default tag is now `%s`.", brawlapi.PrettyTag(rec.Tags[index])))
}

func handleMove(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	from := utils.OptionInt(opts, "from", 1) - 1
	to := utils.OptionInt(opts, "to", 1) - 1
	userID := utils.InteractionUserID(i)

	rec, err := database.GetUser(b.GetDB(), userID)
	if err != nil {
		log.Printf("tags: %v", err)
		utils.SendErrorResponse(s, i, "Could not load your saved tags.")
		return
	}
	if err := MoveTag(&rec, from, to); err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	if err := database.SaveUser(b.GetDB(), rec); err != nil {
		log.Printf("tags: %v", err)
		utils.SendErrorResponse(s, i, "Could not reorder your tags.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("✅ Moved `%s` to position %d.", brawlapi.PrettyTag(rec.Tags[to]), to+1))
}

func handleRemove(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	index := utils.OptionInt(opts, "index", 1) - 1
	userID := utils.InteractionUserID(i)

	rec, err := database.GetUser(b.GetDB(), userID)
	if err != nil {
		log.Printf("tags: %v", err)
		utils.SendErrorResponse(s, i, "Could not load your saved tags.")
		return
	}
	removed, err := RemoveTag(&rec, index)
	if err != nil {
		utils.SendErrorResponse(s, i, err.Error())
		return
	}
	if err := database.SaveUser(b.GetDB(), rec); err != nil {
		log.Printf("tags: %v", err)
		utils.SendErrorResponse(s, i, "Could not remove the tag.")
		return
	}
	utils.SendSimpleResponse(s, i, fmt.Sprintf("🗑️ Removed `%s`.", brawlapi.PrettyTag(removed)))
}

// MoveTag moves the tag at position from to position to (0-based) and keeps
// the default marker pointing at the same tag.
func MoveTag(rec *model.UserRecord, from, to int) error {
	n := len(rec.Tags)
	if from < 0 || from >= n || to < 0 || to >= n {
		return errors.New("No saved tag at that position.")
	}
	if from == to {
		return nil
	}

	tag := rec.Tags[from]
	rest := append(append([]string{}, rec.Tags[:from]...), rec.Tags[from+1:]...)
	rec.Tags = append(append(append([]string{}, rest[:to]...), tag), rest[to:]...)

	switch {
	case rec.DefaultIndex == from:
		rec.DefaultIndex = to
	case from < rec.DefaultIndex && rec.DefaultIndex <= to:
		rec.DefaultIndex--
	case to <= rec.DefaultIndex && rec.DefaultIndex < from:
		rec.DefaultIndex++
	}
	return nil
}

// RemoveTag deletes the tag at position index (0-based) and adjusts the
// default marker. Returns the removed tag.
func RemoveTag(rec *model.UserRecord, index int) (string, error) {
	if index < 0 || index >= len(rec.Tags) {
		return "", errors.New("No saved tag at that position.")
	}
	removed := rec.Tags[index]
	rec.Tags = append(append([]string{}, rec.Tags[:index]...), rec.Tags[index+1:]...)

	switch {
	case rec.DefaultIndex == index:
		rec.DefaultIndex = 0
	case rec.DefaultIndex > index:
		rec.DefaultIndex--
	}
	return removed, nil
}
