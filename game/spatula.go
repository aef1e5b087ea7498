package game

import (
	"errors"
	"fmt"
)

// Spatula identifies one golden-spatula task. Declaration order matches the
// in-game pause-menu order, which is what MenuCoordinate and SpatulaAt
// convert to and from: the first coordinate is the menu-world index and the
// second is the task index within that world.
type Spatula uint8

const (
	// Bikini Bottom
	OnTopOfThePineapple Spatula = iota
	OnTopOfShadyShoals
	OnTopOfTheChumBucket
	SpongebobsCloset
	AnnoySquidward
	AmbushAtTheTreeDome
	InfestationAtTheKrustyKrab
	AWallJumpInTheBucket

	// Jellyfish Fields
	TopOfTheHill
	CowaBungee
	Spelunking
	PatricksDilemma
	NavigateTheCanyonsAndMesas
	DrainTheLake
	SlideLeap
	DefeatKingJellyfish

	// Downtown Bikini Bottom
	EndOfTheRoad
	LearnSandysMoves
	TikisGoBoom
	AcrossTheRooftops
	SwinginSandy
	AmbushInTheLighthouse
	ExtremeBungee
	ComeBackWithTheCruiseBubble

	// Goo Lagoon
	KingOfTheCastle
	ConnectTheTowers
	SaveTheChildren
	OverTheMoat
	ThroughTheSeaCaves
	CleanOutTheBumperBoats
	SlipAndSlideUnderThePier
	TowerBungee

	// Poseidome
	RumbleAtThePoseidome

	// Rock Bottom
	GetToTheMuseum
	SlipSlidingAway
	ReturnTheMuseumsArt
	SwingalongSpatula
	PlunderingRobotsInTheMuseum
	AcrossTheTrenchOfDarkness
	LasersAreFunAndGoodForYou
	HowInTarnationDoYouGetThere

	// Mermalair
	TopOfTheEntranceAreaML
	TopOfTheComputerArea
	ShutDownTheSecuritySystem
	TheFunnelMachines
	TheSpinningTowersOfPower
	TopOfTheSecurityTunnel
	CompleteTheRollingBallRoom
	DefeatPrawn

	// Sand Mountain
	FrostyBungee
	TopOfTheLodge
	DefeatRobotsOnGuppyMound
	BeatMrsPuffsTime
	DefeatRobotsOnFlounderHill
	BeatBubbleBuddysTime
	DefeatRobotsOnSandMountain
	BeatLarrysTime

	// Industrial Park
	RoboPatrickAhoy

	// Kelp Forest
	ThroughTheWoods
	FindAllTheLostCampers
	TikiRoundup
	DownInTheSwamp
	ThroughTheKelpCaves
	PowerCrystalCrisis
	KelpVineSlide
	BeatMermaidMansTime

	// Flying Dutchman's Graveyard
	TopOfTheEntranceAreaFDG
	APathThroughTheGoo
	GooTankerAhoy
	TopOfTheStackOfShips
	ShipwreckBungee
	DestroyTheRobotShip
	GetAloftThereMatey
	DefeatTheFlyingDutchman

	// SpongeBob's Dream
	AcrossTheDreamscape
	FollowTheBouncingBall
	SlidingTexasStyle
	SwingersAhoy
	MusicIsInTheEarOfTheBeholder
	KrabbyPattyPlatforms
	SuperBounce
	HereYouGo

	// Chum Bucket Lab
	KahRahTae
	TheSmallShallRuleOrNot

	// NumSpatulas is the number of defined spatula tasks.
	NumSpatulas = int(TheSmallShallRuleOrNot) + 1
)

// ErrUnknownMenuCoordinate is returned when a (world, index) pair lies
// outside the pause menu's layout.
var ErrUnknownMenuCoordinate = errors.New("menu coordinate does not correspond to a spatula")

// menuWorldSizes is the number of tasks per menu world, in menu order.
var menuWorldSizes = [...]int{8, 8, 8, 8, 1, 8, 8, 8, 1, 8, 8, 8, 2}

// MenuCoordinate returns the (world, index) position of this spatula in the
// pause menu.
func (s Spatula) MenuCoordinate() (world, index int) {
	rest := int(s)
	for w, size := range menuWorldSizes {
		if rest < size {
			return w, rest
		}
		rest -= size
	}
	// Unreachable for defined Spatula values.
	return -1, -1
}

// SpatulaAt returns the spatula located at a pause-menu (world, index)
// coordinate.
func SpatulaAt(world, index int) (Spatula, error) {
	if world < 0 || world >= len(menuWorldSizes) || index < 0 || index >= menuWorldSizes[world] {
		return 0, fmt.Errorf("(%d, %d): %w", world, index, ErrUnknownMenuCoordinate)
	}
	base := 0
	for w := 0; w < world; w++ {
		base += menuWorldSizes[w]
	}
	return Spatula(base + index), nil
}

// sceneOffsets holds each spatula's index within its level's entity array,
// or -1 for the two spatulas granted by cutscene rather than pickup.
// Validated for the Gamecube build only; indexes are meaningful only while
// the spatula's level is loaded.
var sceneOffsets = [NumSpatulas]int32{
	OnTopOfThePineapple:          0xA8,
	OnTopOfShadyShoals:           0xCF,
	OnTopOfTheChumBucket:         0xD0,
	SpongebobsCloset:             0x5D,
	AnnoySquidward:               0x26,
	AmbushAtTheTreeDome:          0x3A,
	InfestationAtTheKrustyKrab:   0xCE,
	AWallJumpInTheBucket:         0x2A,
	TopOfTheHill:                 0xC8,
	CowaBungee:                   0xC9,
	Spelunking:                   0xD8,
	PatricksDilemma:              0xD7,
	NavigateTheCanyonsAndMesas:   0xFA,
	DrainTheLake:                 0xEA,
	SlideLeap:                    0x58,
	DefeatKingJellyfish:          0x128,
	EndOfTheRoad:                 0xBA,
	LearnSandysMoves:             0xB9,
	TikisGoBoom:                  0x111,
	AcrossTheRooftops:            0xAB,
	SwinginSandy:                 0xAC,
	AmbushInTheLighthouse:        0x53,
	ExtremeBungee:                0x99,
	ComeBackWithTheCruiseBubble:  0x9A,
	KingOfTheCastle:              0x12A,
	ConnectTheTowers:             0x154,
	SaveTheChildren:              0x153,
	OverTheMoat:                  0x12B,
	ThroughTheSeaCaves:           0x5C,
	CleanOutTheBumperBoats:       0xFF,
	SlipAndSlideUnderThePier:     0xFD,
	TowerBungee:                  0xFE,
	RumbleAtThePoseidome:         0x28,
	GetToTheMuseum:               0xFF,
	SlipSlidingAway:              0xFE,
	ReturnTheMuseumsArt:          0x105,
	SwingalongSpatula:            0x107,
	PlunderingRobotsInTheMuseum:  0x76,
	AcrossTheTrenchOfDarkness:    0xA5,
	LasersAreFunAndGoodForYou:    0xA4,
	HowInTarnationDoYouGetThere:  0xA3,
	TopOfTheEntranceAreaML:       0x72,
	TopOfTheComputerArea:         0x6A,
	ShutDownTheSecuritySystem:    0x6B,
	TheFunnelMachines:            0x68,
	TheSpinningTowersOfPower:     0x69,
	TopOfTheSecurityTunnel:       0x9A,
	CompleteTheRollingBallRoom:   0x45,
	DefeatPrawn:                  0x39,
	FrostyBungee:                 0x5D,
	TopOfTheLodge:                0x5E,
	DefeatRobotsOnGuppyMound:     0x91,
	BeatMrsPuffsTime:             0x92,
	DefeatRobotsOnFlounderHill:   0xA8,
	BeatBubbleBuddysTime:         0xA9,
	DefeatRobotsOnSandMountain:   0xCD,
	BeatLarrysTime:               0xCC,
	RoboPatrickAhoy:              0x28,
	ThroughTheWoods:              0x94,
	FindAllTheLostCampers:        0x8D,
	TikiRoundup:                  0x83,
	DownInTheSwamp:               0x84,
	ThroughTheKelpCaves:          0x5A,
	PowerCrystalCrisis:           0x53,
	KelpVineSlide:                0x53,
	BeatMermaidMansTime:          0x54,
	TopOfTheEntranceAreaFDG:      0x70,
	APathThroughTheGoo:           0x71,
	GooTankerAhoy:                0x6F,
	TopOfTheStackOfShips:         0x86,
	ShipwreckBungee:              0x87,
	DestroyTheRobotShip:          0x5F,
	GetAloftThereMatey:           0x60,
	DefeatTheFlyingDutchman:      0x35,
	AcrossTheDreamscape:          0x5E,
	FollowTheBouncingBall:        0x5F,
	SlidingTexasStyle:            0xA1,
	SwingersAhoy:                 0xA3,
	MusicIsInTheEarOfTheBeholder: 0x22E,
	KrabbyPattyPlatforms:         0x7F,
	SuperBounce:                  0x6E,
	HereYouGo:                    0x32,
	KahRahTae:                    -1,
	TheSmallShallRuleOrNot:       -1,
}

// SceneOffset returns the spatula's index within its level's entity array.
// ok is false for the two spatulas that are granted by cutscene and have no
// world entity.
func (s Spatula) SceneOffset() (offset uint32, ok bool) {
	if int(s) >= NumSpatulas {
		return 0, false
	}
	raw := sceneOffsets[s]
	if raw < 0 {
		return 0, false
	}
	return uint32(raw), true
}

var spatulaLevels = [NumSpatulas]Level{
	OnTopOfThePineapple:          BikiniBottom,
	OnTopOfShadyShoals:           BikiniBottom,
	OnTopOfTheChumBucket:         BikiniBottom,
	SpongebobsCloset:             SpongebobHouse,
	AnnoySquidward:               SquidwardHouse,
	AmbushAtTheTreeDome:          Treedome,
	InfestationAtTheKrustyKrab:   BikiniBottom,
	AWallJumpInTheBucket:         ChumBucket,
	TopOfTheHill:                 JellyfishRock,
	CowaBungee:                   JellyfishRock,
	Spelunking:                   JellyfishCaves,
	PatricksDilemma:              JellyfishCaves,
	NavigateTheCanyonsAndMesas:   JellyfishLake,
	DrainTheLake:                 JellyfishLake,
	SlideLeap:                    JellyfishMountain,
	DefeatKingJellyfish:          JellyfishRock,
	EndOfTheRoad:                 DowntownStreets,
	LearnSandysMoves:             DowntownStreets,
	TikisGoBoom:                  DowntownStreets,
	AcrossTheRooftops:            DowntownRooftops,
	SwinginSandy:                 DowntownRooftops,
	AmbushInTheLighthouse:        DowntownLighthouse,
	ExtremeBungee:                DowntownSeaNeedle,
	ComeBackWithTheCruiseBubble:  DowntownSeaNeedle,
	KingOfTheCastle:              GooLagoonBeach,
	ConnectTheTowers:             GooLagoonBeach,
	SaveTheChildren:              GooLagoonBeach,
	OverTheMoat:                  GooLagoonBeach,
	ThroughTheSeaCaves:           GooLagoonCaves,
	CleanOutTheBumperBoats:       GooLagoonPier,
	SlipAndSlideUnderThePier:     GooLagoonPier,
	TowerBungee:                  GooLagoonPier,
	RumbleAtThePoseidome:         Poseidome,
	GetToTheMuseum:               RockBottomDowntown,
	SlipSlidingAway:              RockBottomDowntown,
	ReturnTheMuseumsArt:          RockBottomDowntown,
	SwingalongSpatula:            RockBottomDowntown,
	PlunderingRobotsInTheMuseum:  RockBottomMuseum,
	AcrossTheTrenchOfDarkness:    RockBottomTrench,
	LasersAreFunAndGoodForYou:    RockBottomTrench,
	HowInTarnationDoYouGetThere:  RockBottomTrench,
	TopOfTheEntranceAreaML:       MermalairEntranceArea,
	TopOfTheComputerArea:         MermalairMainChamber,
	ShutDownTheSecuritySystem:    MermalairMainChamber,
	TheFunnelMachines:            MermalairMainChamber,
	TheSpinningTowersOfPower:     MermalairMainChamber,
	TopOfTheSecurityTunnel:       MermalairSecurityTunnel,
	CompleteTheRollingBallRoom:   MermalairBallroom,
	DefeatPrawn:                  MermalairVillianContainment,
	FrostyBungee:                 SandMountainHub,
	TopOfTheLodge:                SandMountainHub,
	DefeatRobotsOnGuppyMound:     SandMountainSlide1,
	BeatMrsPuffsTime:             SandMountainSlide1,
	DefeatRobotsOnFlounderHill:   SandMountainSlide2,
	BeatBubbleBuddysTime:         SandMountainSlide2,
	DefeatRobotsOnSandMountain:   SandMountainSlide3,
	BeatLarrysTime:               SandMountainSlide3,
	RoboPatrickAhoy:              IndustrialPark,
	ThroughTheWoods:              KelpForest,
	FindAllTheLostCampers:        KelpForest,
	TikiRoundup:                  KelpSwamps,
	DownInTheSwamp:               KelpSwamps,
	ThroughTheKelpCaves:          KelpCaves,
	PowerCrystalCrisis:           KelpCaves,
	KelpVineSlide:                KelpVines,
	BeatMermaidMansTime:          KelpVines,
	TopOfTheEntranceAreaFDG:      GraveyardLake,
	APathThroughTheGoo:           GraveyardLake,
	GooTankerAhoy:                GraveyardLake,
	TopOfTheStackOfShips:         GraveyardShipwreck,
	ShipwreckBungee:              GraveyardShipwreck,
	DestroyTheRobotShip:          GraveyardShip,
	GetAloftThereMatey:           GraveyardShip,
	DefeatTheFlyingDutchman:      GraveyardBoss,
	AcrossTheDreamscape:          SpongebobsDream,
	FollowTheBouncingBall:        SpongebobsDream,
	SlidingTexasStyle:            SandysDream,
	SwingersAhoy:                 SandysDream,
	MusicIsInTheEarOfTheBeholder: SquidwardsDream,
	KrabbyPattyPlatforms:         KrabsDream,
	SuperBounce:                  SpongebobsDream,
	HereYouGo:                    PatricksDream,
	KahRahTae:                    ChumBucketLab,
	TheSmallShallRuleOrNot:       ChumBucketBrain,
}

// Level returns the level this spatula is collected in.
func (s Spatula) Level() Level {
	if int(s) >= NumSpatulas {
		return MainMenu
	}
	return spatulaLevels[s]
}
