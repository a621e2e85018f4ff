// Package config loads a game's configuration from YAML: the named
// grids, dictionaries, scoring rules, and letter distributions a
// server operator defines once, plus the GameRules entries that each
// pick one of each to assemble a playable ruleset.
package config

import (
	"fmt"
	"os"

	"github.com/namsral/flag"
	"gopkg.in/yaml.v3"

	"github.com/domino14/wgs/board"
	"github.com/domino14/wgs/distribution"
	"github.com/domino14/wgs/scoring"
)

// Flags holds the process-level flags used to locate configuration
// and select a game at startup.
type Flags struct {
	ConfigPath string
	Game       string
}

// LoadFlags parses args ("-config", "-game", and their environment
// variable equivalents via namsral/flag) into a Flags, returning
// whatever non-flag arguments follow (the subcommand and its options).
func LoadFlags(args []string) (*Flags, []string, error) {
	f := &Flags{}
	// namsral/flag reads the value of a flag named DefaultConfigFlagname
	// as a file of flag settings during Parse; -config here names the
	// YAML game configuration instead, so that lookup is switched off.
	flag.DefaultConfigFlagname = ""
	fs := flag.NewFlagSet("wgs", flag.ContinueOnError)
	fs.StringVar(&f.ConfigPath, "config", "./data/config.yaml", "path to the game configuration file")
	fs.StringVar(&f.Game, "game", "", "the named GameRules entry to load")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// gridYAML mirrors one entry under Grids: a list of 1-indexed
// [x, y] tile positions and an adjacency mode.
type gridYAML struct {
	Tiles     [][2]int `yaml:"Tiles"`
	Adjacency string   `yaml:"Adjacency"`
}

// scoringYAML mirrors one entry under ScoringRules.
type scoringYAML struct {
	QIsQu               *bool           `yaml:"QIsQu"`
	WildCardPoints      bool            `yaml:"WildCardPoints"`
	ShortWordMultiplier bool            `yaml:"ShortWordMultiplier"`
	RandomBoardSize     int             `yaml:"RandomBoardSize"`
	QuLength            *int            `yaml:"QuLength"`
	ShortWordLength     int             `yaml:"ShortWordLength"`
	ShortWordPoints     int             `yaml:"ShortWordPoints"`
	MinWordLength       int             `yaml:"MinWordLength"`
	RoundBonusUp        bool            `yaml:"RoundBonusUp"`
	MultiplyLengthBonus bool            `yaml:"MultiplyLengthBonus"`
	LetterValues        map[string]int  `yaml:"LetterValues"`
	LengthBonuses       map[int]float64 `yaml:"LengthBonuses"`
}

// distributionYAML mirrors one entry under LetterDistributions.
type distributionYAML struct {
	GenerationMethod         string `yaml:"GenerationMethod"`
	ShuffleLetters           *bool  `yaml:"ShuffleLetters"`
	SampleWithoutReplacement *bool  `yaml:"SampleWithoutReplacement"`
	ShuffleDice              *bool  `yaml:"ShuffleDice"`
	DiceLetters              string `yaml:"DiceLetters"`
	PropensityLetters        string `yaml:"PropensityLetters"`
	WordListFile             string `yaml:"WordListFile"`
}

// gameRulesYAML mirrors one entry under GameRules: the string keys
// used to resolve one entry from each of the other sections.
type gameRulesYAML struct {
	GridDesign         string `yaml:"GridDesign"`
	ScoringRules       string `yaml:"ScoringRules"`
	LetterDistribution string `yaml:"LetterDistribution"`
	Dictionary         string `yaml:"Dictionary"`
	Preferences        string `yaml:"Preferences"`
}

type rawConfig struct {
	Grids               map[string]gridYAML          `yaml:"Grids"`
	Dictionaries        map[string]string             `yaml:"Dictionaries"`
	ScoringRules        map[string]scoringYAML        `yaml:"ScoringRules"`
	LetterDistributions map[string]distributionYAML    `yaml:"LetterDistributions"`
	GameRules           map[string]gameRulesYAML      `yaml:"GameRules"`
	Preferences         map[string]map[string]string  `yaml:"Preferences"`
}

// GameConfig holds every named section of a loaded configuration
// file, resolved into this module's own types.
type GameConfig struct {
	Grids        map[string]*board.Grid
	Dictionaries map[string]string
	ScoringRules map[string]*scoring.Rules
	Letters      map[string]*distribution.Distribution
	GameRules    map[string]gameRulesYAML
	Preferences  map[string]map[string]string
}

// Load reads and parses a YAML configuration file at path.
func Load(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	gc := &GameConfig{
		Grids:        map[string]*board.Grid{},
		Dictionaries: raw.Dictionaries,
		ScoringRules: map[string]*scoring.Rules{},
		Letters:      map[string]*distribution.Distribution{},
		GameRules:    raw.GameRules,
		Preferences:  raw.Preferences,
	}

	for name, g := range raw.Grids {
		grid, err := buildGrid(name, g)
		if err != nil {
			return nil, err
		}
		gc.Grids[name] = grid
	}
	for name, r := range raw.ScoringRules {
		gc.ScoringRules[name] = buildScoringRules(r)
	}
	for name, d := range raw.LetterDistributions {
		gc.Letters[name] = buildDistribution(d)
	}

	return gc, nil
}

func buildGrid(name string, g gridYAML) (*board.Grid, error) {
	grid := board.NewGrid(board.Adjacency(g.Adjacency))
	for _, pos := range g.Tiles {
		// Config positions are 1-indexed, matching the original JSON
		// schema's [x, y] tile list.
		if pos[0] < 1 || pos[0] > board.MaxGridWidth || pos[1] < 1 || pos[1] > board.MaxGridWidth {
			return nil, fmt.Errorf("Grids %q: tile position [%d, %d] out of range 1..%d", name, pos[0], pos[1], board.MaxGridWidth)
		}
		grid.SetTile(pos[0]-1, pos[1]-1)
	}
	return grid, nil
}

func buildScoringRules(r scoringYAML) *scoring.Rules {
	rules := scoring.NewRules()
	if r.QIsQu != nil {
		rules.QIsQu = *r.QIsQu
	}
	rules.WildCardPoints = r.WildCardPoints
	rules.ShortWordMultiplier = r.ShortWordMultiplier
	rules.RandomBoardSize = maxInt(0, r.RandomBoardSize)
	if r.QuLength != nil {
		rules.QuLength = maxInt(0, *r.QuLength)
	}
	rules.ShortWordLength = maxInt(0, r.ShortWordLength)
	rules.ShortWordPoints = maxInt(0, r.ShortWordPoints)
	rules.MinWordLength = maxInt(0, r.MinWordLength)
	rules.RoundBonusUp = r.RoundBonusUp
	rules.MultiplyLengthBonus = r.MultiplyLengthBonus

	for letter, value := range r.LetterValues {
		if len(letter) == 1 {
			rules.SetLetterValue(letter[0], value)
		}
	}
	for length, bonus := range r.LengthBonuses {
		rules.SetLengthBonus(length, bonus)
	}
	return rules
}

func buildDistribution(d distributionYAML) *distribution.Distribution {
	dist := distribution.New()
	dist.GenerationMethod = distribution.Method(d.GenerationMethod)
	if d.ShuffleLetters != nil {
		dist.ShuffleLetters = *d.ShuffleLetters
	}
	if d.SampleWithoutReplacement != nil {
		dist.SampleWithoutReplacement = *d.SampleWithoutReplacement
	}
	if d.ShuffleDice != nil {
		dist.ShuffleDice = *d.ShuffleDice
	}
	dist.WordListFile = d.WordListFile
	if d.DiceLetters != "" {
		dist.SetDiceLetters(d.DiceLetters)
	}
	if d.PropensityLetters != "" {
		dist.SetPropensityLetters(d.PropensityLetters)
	}
	return dist
}

// RuleSet is one fully-resolved game: the grid, dictionary path,
// scoring rules, and letter distribution a GameRules entry points at,
// plus its preferences merged with any "Default" preferences entry.
type RuleSet struct {
	Name         string
	Grid         *board.Grid
	Dictionary   string
	ScoringRules *scoring.Rules
	Letters      *distribution.Distribution
	Preferences  map[string]string
}

// Resolve builds a RuleSet for the named GameRules entry, merging in
// any preferences from a "Default" entry that the game's own
// preferences don't already override.
func (gc *GameConfig) Resolve(game string) (*RuleSet, error) {
	gr, ok := gc.GameRules[game]
	if !ok {
		return nil, fmt.Errorf("no GameRules entry named %q", game)
	}

	rs := &RuleSet{
		Name:         game,
		Grid:         gc.Grids[gr.GridDesign],
		Dictionary:   gc.Dictionaries[gr.Dictionary],
		ScoringRules: gc.ScoringRules[gr.ScoringRules],
		Letters:      gc.Letters[gr.LetterDistribution],
		Preferences:  map[string]string{},
	}
	if rs.ScoringRules == nil {
		return nil, fmt.Errorf("GameRules %q: no ScoringRules entry named %q", game, gr.ScoringRules)
	}
	if rs.Letters == nil {
		return nil, fmt.Errorf("GameRules %q: no LetterDistributions entry named %q", game, gr.LetterDistribution)
	}

	for k, v := range gc.Preferences[gr.Preferences] {
		rs.Preferences[k] = v
	}
	if def, ok := gc.Preferences["Default"]; ok {
		for k, v := range def {
			if _, already := rs.Preferences[k]; !already {
				rs.Preferences[k] = v
			}
		}
	}

	return rs, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
