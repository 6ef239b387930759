package archive

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"clubkeeper/model"
	"clubkeeper/utils"

	"github.com/bwmarrin/discordgo"
)

// maxAttachmentSize caps re-uploaded attachments at the webhook limit.
const maxAttachmentSize = 8 << 20

// progressEvery is how many mirrored messages pass between progress edits.
const progressEvery = 50

// run mirrors the full history of a channel into a fresh channel on the
// archive guild, oldest message first, then optionally deletes the source.
// Meant to be called from a goroutine; progress is reported in the source
// channel itself.
func run(b model.Bot, gs model.GuildSettings, source *discordgo.Channel) {
	s := b.GetSession()

	status, err := s.ChannelMessageSend(source.ID, "📦 Archiving this channel...")
	if err != nil {
		log.Printf("archive: posting status message: %v", err)
	}

	fail := func(msg string, err error) {
		log.Printf("archive: %s: %v", msg, err)
		if status != nil {
			s.ChannelMessageEdit(source.ID, status.ID, "❌ Archive failed: "+msg+".")
		}
		utils.LogError(s, b.GetConfig().LogChannelID, "archive", msg, err.Error())
	}

	messages, err := fetchAllMessages(s, source.ID)
	if err != nil {
		fail("fetching channel history", err)
		return
	}

	dest, err := s.GuildChannelCreateComplex(gs.ArchiveGuildID, discordgo.GuildChannelCreateData{
		Name:     source.Name,
		Type:     discordgo.ChannelTypeGuildText,
		Topic:    fmt.Sprintf("Archive of #%s from %s", source.Name, source.GuildID),
		ParentID: gs.ArchiveCategoryID,
	})
	if err != nil {
		fail("creating the archive channel", err)
		return
	}

	hook, err := s.WebhookCreate(dest.ID, "archiver", "")
	if err != nil {
		fail("creating the archive webhook", err)
		return
	}
	defer func() {
		if err := s.WebhookDelete(hook.ID); err != nil {
			log.Printf("archive: deleting webhook: %v", err)
		}
	}()

	pause := time.Duration(b.GetConfig().Settings.ArchivePauseMS) * time.Millisecond
	for idx, msg := range messages {
		// The status message itself does not belong in the archive.
		if status != nil && msg.ID == status.ID {
			continue
		}
		if err := mirrorMessage(s, hook, msg); err != nil {
			log.Printf("archive: mirroring message %s: %v", msg.ID, err)
		}
		if status != nil && (idx+1)%progressEvery == 0 {
			s.ChannelMessageEdit(source.ID, status.ID,
				fmt.Sprintf("📦 Archiving... %d / %d messages.", idx+1, len(messages)))
		}
		time.Sleep(pause)
	}

	log.Printf("archive: mirrored %d messages from #%s to #%s", len(messages), source.Name, dest.Name)
	utils.LogInfo(s, b.GetConfig().LogChannelID, "archive", "channel archived",
		fmt.Sprintf("#%s → #%s, %d messages", source.Name, dest.Name, len(messages)))

	if gs.ArchiveDelete {
		if _, err := s.ChannelDelete(source.ID); err != nil {
			fail("deleting the source channel", err)
		}
		return
	}
	if status != nil {
		s.ChannelMessageEdit(source.ID, status.ID,
			fmt.Sprintf("✅ Archived %d messages to <#%s>.", len(messages), dest.ID))
	}
}

// fetchAllMessages pages through the full channel history and returns it
// oldest first.
func fetchAllMessages(s *discordgo.Session, channelID string) ([]*discordgo.Message, error) {
	var all []*discordgo.Message
	beforeID := ""
	for {
		batch, err := s.ChannelMessages(channelID, 100, beforeID, "", "")
		if err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			break
		}
		all = append(all, batch...)
		beforeID = batch[len(batch)-1].ID
		if len(batch) < 100 {
			break
		}
	}
	// The API returns newest first.
	for i, j := 0, len(all)-1; i < j; i, j = i+1, j-1 {
		all[i], all[j] = all[j], all[i]
	}
	return all, nil
}

// mirrorMessage replays one message through the webhook, keeping the
// author's name and avatar, splitting overlong content and re-uploading
// attachments.
func mirrorMessage(s *discordgo.Session, hook *discordgo.Webhook, msg *discordgo.Message) error {
	username := "unknown"
	avatar := ""
	if msg.Author != nil {
		username = msg.Author.Username
		avatar = msg.Author.AvatarURL("")
	}

	content := msg.Content
	if content == "" && len(msg.Embeds) == 0 && len(msg.Attachments) == 0 {
		return nil
	}

	chunks := SplitContent(content, MessageLimit)
	if len(chunks) == 0 {
		chunks = []string{""}
	}

	for idx, chunk := range chunks {
		params := &discordgo.WebhookParams{
			Content:   chunk,
			Username:  username,
			AvatarURL: avatar,
		}
		// Embeds and attachments ride on the final chunk.
		if idx == len(chunks)-1 {
			params.Embeds = msg.Embeds
			files, notes := downloadAttachments(utils.GlobalHTTPClient, msg.Attachments)
			params.Files = files
			if notes != "" {
				if params.Content != "" {
					params.Content += "\n"
				}
				params.Content += notes
			}
			for _, f := range files {
				defer f.Reader.(io.Closer).Close()
			}
		}
		if _, err := s.WebhookExecute(hook.ID, hook.Token, true, params); err != nil {
			return err
		}
	}
	return nil
}

// downloadAttachments pulls attachment bodies for re-upload. Oversized or
// failed downloads degrade to a link in the message text.
func downloadAttachments(client *http.Client, attachments []*discordgo.MessageAttachment) ([]*discordgo.File, string) {
	var files []*discordgo.File
	var notes string
	for _, att := range attachments {
		if att.Size > maxAttachmentSize {
			notes += fmt.Sprintf("📎 %s (too large): %s\n", att.Filename, att.URL)
			continue
		}
		resp, err := client.Get(att.URL)
		if err != nil {
			log.Printf("archive: downloading attachment %s: %v", att.Filename, err)
			notes += fmt.Sprintf("📎 %s (unavailable): %s\n", att.Filename, att.URL)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			log.Printf("archive: downloading attachment %s: HTTP %d", att.Filename, resp.StatusCode)
			notes += fmt.Sprintf("📎 %s (unavailable): %s\n", att.Filename, att.URL)
			continue
		}
		files = append(files, &discordgo.File{
			Name:        att.Filename,
			ContentType: att.ContentType,
			Reader:      resp.Body,
		})
	}
	return files, notes
}
