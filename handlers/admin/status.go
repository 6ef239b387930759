package admin

import (
	"fmt"
	"log"
	"runtime"
	"time"

	"clubkeeper/model"
	"clubkeeper/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

func handleStatus(b model.Bot, s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := utils.DeferResponse(s, i, true); err != nil {
		log.Printf("admin: deferring response: %v", err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: "Bot Status",
		Color: utils.ColorAccent,
	}

	if percents, err := cpu.Percent(time.Second, false); err == nil && len(percents) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "CPU", Value: fmt.Sprintf("%.1f%%", percents[0]), Inline: true,
		})
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Memory",
			Value:  fmt.Sprintf("%.1f%% of %.1f GB", vm.UsedPercent, float64(vm.Total)/(1<<30)),
			Inline: true,
		})
	}
	if uptime, err := host.Uptime(); err == nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Host Uptime", Value: (time.Duration(uptime) * time.Second).String(), Inline: true,
		})
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{
			Name: "Goroutines", Value: fmt.Sprintf("%d", runtime.NumGoroutine()), Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name: "Heap", Value: fmt.Sprintf("%.1f MB", float64(ms.HeapAlloc)/(1<<20)), Inline: true,
		},
		&discordgo.MessageEmbedField{
			Name: "Cached API Entries", Value: fmt.Sprintf("%d", b.GetAPI().SweepCache()), Inline: true,
		},
	)

	utils.FollowUpEmbed(s, i.Interaction, embed)
}
