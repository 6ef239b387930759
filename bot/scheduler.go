package bot

import (
	"log"
	"sync"
	"time"

	"clubkeeper/handlers/clubboard"
	"clubkeeper/handlers/clubsync"
	"clubkeeper/handlers/onboarding"
	"clubkeeper/tasks"
	"clubkeeper/utils/database"
)

// maxConcurrentJobs caps how many guilds are worked on at once.
const maxConcurrentJobs = 5

// Scheduler drives the periodic work: board renders, membership polls,
// cache maintenance and wizard timeouts.
type Scheduler struct {
	bot   *Bot
	done  chan struct{}
	wg    sync.WaitGroup
	guard chan struct{}

	mu       sync.Mutex
	lastSync map[string]time.Time
}

func NewScheduler(b *Bot) *Scheduler {
	return &Scheduler{
		bot:      b,
		done:     make(chan struct{}),
		guard:    make(chan struct{}, maxConcurrentJobs),
		lastSync: make(map[string]time.Time),
	}
}

// Start launches the ticker loops.
func (sc *Scheduler) Start() {
	settings := sc.bot.GetConfig().Settings

	boardInterval := time.Duration(settings.BoardIntervalS) * time.Second
	if boardInterval <= 0 {
		boardInterval = 5 * time.Minute
	}
	syncTick := time.Duration(settings.SyncTickS) * time.Second
	if syncTick <= 0 {
		syncTick = 30 * time.Second
	}
	sweepInterval := time.Duration(settings.CacheSweepHours) * time.Hour
	if sweepInterval <= 0 {
		sweepInterval = time.Hour
	}

	sc.loop(boardInterval, sc.boardTick)
	sc.loop(syncTick, sc.syncTick)
	sc.loop(sweepInterval, sc.cacheSweep)
	sc.loop(24*time.Hour, sc.refreshClubCaches)
	sc.loop(30*time.Second, func() { onboarding.Sweep(sc.bot) })

	log.Printf("Scheduler started (board every %s, sync tick %s)", boardInterval, syncTick)
}

// Stop terminates the loops and waits for running jobs to finish.
func (sc *Scheduler) Stop() {
	close(sc.done)
	sc.wg.Wait()
	log.Println("Scheduler stopped")
}

func (sc *Scheduler) loop(interval time.Duration, tick func()) {
	sc.wg.Add(1)
	go func() {
		defer sc.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-sc.done:
				return
			case <-ticker.C:
				tick()
			}
		}
	}()
}

// dispatch runs the job under the concurrency guard.
func (sc *Scheduler) dispatch(job func()) {
	select {
	case sc.guard <- struct{}{}:
	case <-sc.done:
		return
	}
	sc.wg.Add(1)
	go func() {
		defer sc.wg.Done()
		defer func() { <-sc.guard }()
		job()
	}()
}

func (sc *Scheduler) guilds() []string {
	ids, err := database.GuildsWithSettings(sc.bot.DB)
	if err != nil {
		log.Printf("scheduler: %v", err)
		return nil
	}
	return ids
}

func (sc *Scheduler) boardTick() {
	for _, guildID := range sc.guilds() {
		gs, err := database.GetGuildSettings(sc.bot.DB, guildID)
		if err != nil {
			log.Printf("scheduler: %v", err)
			continue
		}
		if !gs.BoardEnabled || gs.BoardChannelID == "" {
			continue
		}
		id := guildID
		sc.dispatch(func() {
			if err := clubboard.Render(sc.bot, id); err != nil {
				log.Printf("scheduler: rendering board for guild %s: %v", id, err)
			}
		})
	}
}

// syncTick polls each guild whose own interval has elapsed. The tick runs
// much more often than any guild's interval so per-guild settings take
// effect without restarting.
func (sc *Scheduler) syncTick() {
	now := time.Now()
	for _, guildID := range sc.guilds() {
		gs, err := database.GetGuildSettings(sc.bot.DB, guildID)
		if err != nil {
			log.Printf("scheduler: %v", err)
			continue
		}
		if !gs.SyncEnabled {
			continue
		}
		interval := time.Duration(clubsync.ClampInterval(gs.SyncInterval)) * time.Second

		sc.mu.Lock()
		due := now.Sub(sc.lastSync[guildID]) >= interval
		if due {
			sc.lastSync[guildID] = now
		}
		sc.mu.Unlock()
		if !due {
			continue
		}

		id := guildID
		sc.dispatch(func() { tasks.SyncGuild(sc.bot, id) })
	}
}

func (sc *Scheduler) cacheSweep() {
	remaining := sc.bot.API.SweepCache()
	log.Printf("scheduler: API cache swept, %d entries remain", remaining)
}

func (sc *Scheduler) refreshClubCaches() {
	for _, guildID := range sc.guilds() {
		id := guildID
		sc.dispatch(func() {
			if _, err := tasks.RefreshClubCaches(sc.bot, id); err != nil {
				log.Printf("scheduler: refreshing clubs for guild %s: %v", id, err)
			}
		})
	}
}
