package brawlapi

// Response shapes for the endpoints this bot consumes. Fields not used
// anywhere in the bot are left out on purpose.

type PlayerIcon struct {
	ID int `json:"id"`
}

type PlayerClubStub struct {
	Tag  string `json:"tag"`
	Name string `json:"name"`
}

type PlayerBrawler struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Power    int    `json:"power"`
	Rank     int    `json:"rank"`
	Trophies int    `json:"trophies"`
}

type Player struct {
	Tag             string          `json:"tag"`
	Name            string          `json:"name"`
	Trophies        int             `json:"trophies"`
	HighestTrophies int             `json:"highestTrophies"`
	ExpLevel        int             `json:"expLevel"`
	TrioVictories   int             `json:"3vs3Victories"`
	SoloVictories   int             `json:"soloVictories"`
	DuoVictories    int             `json:"duoVictories"`
	Icon            PlayerIcon      `json:"icon"`
	Club            PlayerClubStub  `json:"club"`
	Brawlers        []PlayerBrawler `json:"brawlers"`
}

type ClubMember struct {
	Tag      string     `json:"tag"`
	Name     string     `json:"name"`
	Role     string     `json:"role"`
	Trophies int        `json:"trophies"`
	Icon     PlayerIcon `json:"icon"`
}

type Club struct {
	Tag              string       `json:"tag"`
	Name             string       `json:"name"`
	Description      string       `json:"description"`
	Type             string       `json:"type"`
	BadgeID          int          `json:"badgeId"`
	RequiredTrophies int          `json:"requiredTrophies"`
	Trophies         int          `json:"trophies"`
	Members          []ClubMember `json:"members"`
}

type BrawlerRarity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Brawler struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Rarity BrawlerRarity `json:"rarity"`
}

type PlayerRanking struct {
	Tag      string         `json:"tag"`
	Name     string         `json:"name"`
	Trophies int            `json:"trophies"`
	Rank     int            `json:"rank"`
	Club     PlayerClubStub `json:"club"`
}

type ClubRanking struct {
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	Trophies    int    `json:"trophies"`
	Rank        int    `json:"rank"`
	MemberCount int    `json:"memberCount"`
	BadgeID     int    `json:"badgeId"`
}

type BrawlerRanking struct {
	Tag      string `json:"tag"`
	Name     string `json:"name"`
	Trophies int    `json:"trophies"`
	Rank     int    `json:"rank"`
}

type EventDetail struct {
	ID   int    `json:"id"`
	Mode string `json:"mode"`
	Map  string `json:"map"`
}

type ScheduledEvent struct {
	StartTime string      `json:"startTime"`
	EndTime   string      `json:"endTime"`
	SlotID    int         `json:"slotId"`
	Event     EventDetail `json:"event"`
}

type BattleEvent struct {
	Mode string `json:"mode"`
	Map  string `json:"map"`
}

type BattleResult struct {
	Mode         string `json:"mode"`
	Type         string `json:"type"`
	Result       string `json:"result"`
	TrophyChange int    `json:"trophyChange"`
}

type Battle struct {
	BattleTime string       `json:"battleTime"`
	Event      BattleEvent  `json:"event"`
	Battle     BattleResult `json:"battle"`
}

// itemList is the wrapper the API uses for collection endpoints.
type itemList[T any] struct {
	Items []T `json:"items"`
}
