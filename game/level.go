// Package game defines the game-specific domain data: levels, tasks, powers
// and the coarse state machines the engine exposes. Everything here is
// static configuration describing the game build, not logic.
package game

import (
	"errors"
	"fmt"
)

// Level identifies one loadable scene of the game.
//
// The engine identifies scenes with four-byte strings encoded as C
// multi-character constants (u32 sceneID = 'HB01'). SceneID and
// LevelFromSceneID convert between the two forms.
type Level uint8

const (
	MainMenu Level = iota
	IntroCutscene

	BikiniBottom
	SpongebobHouse
	SquidwardHouse
	PatrickHouse
	ShadyShoals
	PoliceStation
	Treedome
	KrustyKrab
	ChumBucket
	Theater

	Poseidome
	IndustrialPark

	JellyfishRock
	JellyfishCaves
	JellyfishLake
	JellyfishMountain

	DowntownStreets
	DowntownRooftops
	DowntownLighthouse
	DowntownSeaNeedle

	GooLagoonBeach
	GooLagoonCaves
	GooLagoonPier

	MermalairEntranceArea
	MermalairMainChamber
	MermalairSecurityTunnel
	MermalairBallroom
	MermalairVillianContainment

	RockBottomDowntown
	RockBottomMuseum
	RockBottomTrench

	SandMountainHub
	SandMountainSlide1
	SandMountainSlide2
	SandMountainSlide3

	KelpForest
	KelpSwamps
	KelpCaves
	KelpVines

	GraveyardLake
	GraveyardShipwreck
	GraveyardShip
	GraveyardBoss

	SpongebobsDream
	SandysDream
	SquidwardsDream
	KrabsDream
	PatricksDream

	ChumBucketLab
	ChumBucketBrain

	SpongeballArena

	// NumLevels is the number of defined levels.
	NumLevels = int(SpongeballArena) + 1
)

// ErrUnknownSceneID is returned when a four-byte scene id does not match
// any known level.
var ErrUnknownSceneID = errors.New("scene id does not correspond to a level")

var sceneIDs = [NumLevels]string{
	MainMenu:                    "MNU3",
	IntroCutscene:               "HB00",
	BikiniBottom:                "HB01",
	SpongebobHouse:              "HB02",
	SquidwardHouse:              "HB03",
	PatrickHouse:                "HB04",
	ShadyShoals:                 "HB06",
	PoliceStation:               "HB09",
	Treedome:                    "HB05",
	KrustyKrab:                  "HB07",
	ChumBucket:                  "HB08",
	Theater:                     "HB10",
	Poseidome:                   "B101",
	IndustrialPark:              "B201",
	JellyfishRock:               "JF01",
	JellyfishCaves:              "JF02",
	JellyfishLake:               "JF03",
	JellyfishMountain:           "JF04",
	DowntownStreets:             "BB01",
	DowntownRooftops:            "BB02",
	DowntownLighthouse:          "BB03",
	DowntownSeaNeedle:           "BB04",
	GooLagoonBeach:              "GL01",
	GooLagoonCaves:              "GL02",
	GooLagoonPier:               "GL03",
	MermalairEntranceArea:       "BC01",
	MermalairMainChamber:        "BC02",
	MermalairSecurityTunnel:     "BC03",
	MermalairBallroom:           "BC04",
	MermalairVillianContainment: "BC05",
	RockBottomDowntown:          "RB01",
	RockBottomMuseum:            "RB02",
	RockBottomTrench:            "RB03",
	SandMountainHub:             "SM01",
	SandMountainSlide1:          "SM02",
	SandMountainSlide2:          "SM03",
	SandMountainSlide3:          "SM04",
	KelpForest:                  "KF01",
	KelpSwamps:                  "KF02",
	KelpCaves:                   "KF04",
	KelpVines:                   "KF05",
	GraveyardLake:               "GY01",
	GraveyardShipwreck:          "GY02",
	GraveyardShip:               "GY03",
	GraveyardBoss:               "GY04",
	SpongebobsDream:             "DB01",
	SandysDream:                 "DB02",
	SquidwardsDream:             "DB03",
	KrabsDream:                  "DB04",
	PatricksDream:               "DB06",
	ChumBucketLab:               "B302",
	ChumBucketBrain:             "B303",
	SpongeballArena:             "PG12",
}

var levelNames = [NumLevels]string{
	MainMenu:                    "Main Menu",
	IntroCutscene:               "Intro Cutscene",
	BikiniBottom:                "Bikini Bottom",
	SpongebobHouse:              "Spongebob's House",
	SquidwardHouse:              "Squidward's House",
	PatrickHouse:                "Patrick's House",
	ShadyShoals:                 "Shady Shoals",
	PoliceStation:               "Police Station",
	Treedome:                    "Treedome",
	KrustyKrab:                  "Krusty Krab",
	ChumBucket:                  "Chum Bucket",
	Theater:                     "Theater",
	Poseidome:                   "Poseidome",
	IndustrialPark:              "Industrial Park",
	JellyfishRock:               "Jellyfish Rock",
	JellyfishCaves:              "Jellyfish Caves",
	JellyfishLake:               "Jellyfish Lake",
	JellyfishMountain:           "Jellyfish Mountain",
	DowntownStreets:             "Downtown Streets",
	DowntownRooftops:            "Downtown Rooftops",
	DowntownLighthouse:          "Downtown Lighthouse",
	DowntownSeaNeedle:           "Downtown Sea Needle",
	GooLagoonBeach:              "Goo Lagoon Beach",
	GooLagoonCaves:              "Goo Lagoon Caves",
	GooLagoonPier:               "Goo Lagoon Pier",
	MermalairEntranceArea:       "Mermalair Entrance Area",
	MermalairMainChamber:        "Mermalair Main Chamber",
	MermalairSecurityTunnel:     "Mermalair Security Tunnel",
	MermalairBallroom:           "Mermalair Ballroom",
	MermalairVillianContainment: "Mermalair Villian Containment",
	RockBottomDowntown:          "Rock Bottom Downtown",
	RockBottomMuseum:            "Rock Bottom Museum",
	RockBottomTrench:            "Rock Bottom Trench",
	SandMountainHub:             "Ski Lodge",
	SandMountainSlide1:          "Guppy Mound",
	SandMountainSlide2:          "Flounder Hill",
	SandMountainSlide3:          "Sand Mountain",
	KelpForest:                  "Kelp Forest",
	KelpSwamps:                  "Kelp Swamps",
	KelpCaves:                   "Kelp Caves",
	KelpVines:                   "Kelp Vines",
	GraveyardLake:               "Graveyard Lake",
	GraveyardShipwreck:          "Graveyard of Ships",
	GraveyardShip:               "Dutchman's Ship",
	GraveyardBoss:               "Flying Dutchman Battle",
	SpongebobsDream:             "Spongebob's Dream",
	SandysDream:                 "Sandy's Dream",
	SquidwardsDream:             "Squidward's Dream",
	KrabsDream:                  "Krab's Dream",
	PatricksDream:               "Patrick's Dream",
	ChumBucketLab:               "Chum Bucket Lab",
	ChumBucketBrain:             "Chum Bucket Brain",
	SpongeballArena:             "Spongeball Arena",
}

// String returns the level's in-game display name.
func (l Level) String() string {
	if int(l) >= NumLevels {
		return fmt.Sprintf("Level(%d)", uint8(l))
	}
	return levelNames[l]
}

// SceneID returns the four-byte scene id for this level.
func (l Level) SceneID() [4]byte {
	var id [4]byte
	if int(l) < NumLevels {
		copy(id[:], sceneIDs[l])
	}
	return id
}

// LevelFromSceneID maps a four-byte scene id back to its Level.
func LevelFromSceneID(id [4]byte) (Level, error) {
	s := string(id[:])
	for l, known := range sceneIDs {
		if known == s {
			return Level(l), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownSceneID)
}
