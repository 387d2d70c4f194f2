package gameday

import "time"

// MarkerKey identifies a JSON object as a game record.
const MarkerKey = "game_media"

// allowList is the ordered set of exported columns.
var allowList = []string{
	"away_code",
	"away_file_code",
	"away_name_abbrev",
	"away_score",
	"away_team_id",
	"away_team_name",
	"calendar_event_id",
	"double_header_sw",
	"event_time",
	"game_nbr",
	"game_pk",
	"game_type",
	"gameday_sw",
	"group",
	"home_code",
	"home_file_code",
	"home_name_abbrev",
	"home_score",
	"home_team_id",
	"home_team_name",
	"id",
	"ind",
	"inning",
	"media_state",
	"series",
	"series_num",
	"status",
	"tbd_flag",
	"top_inning",
	"venue",
	"venue_id",
}

var allowed = func() map[string]struct{} {
	set := make(map[string]struct{}, len(allowList))
	for _, name := range allowList {
		set[name] = struct{}{}
	}
	return set
}()

// AllowList returns a copy of the exported column names in output order.
func AllowList() []string {
	out := make([]string, len(allowList))
	copy(out, allowList)
	return out
}

// IsAllowed reports whether field is one of the exported columns.
func IsAllowed(field string) bool {
	_, ok := allowed[field]
	return ok
}

// Record is a single game, keyed by field name.
type Record map[string]string

// Get returns the value of field, or "" when the record lacks it.
func (r Record) Get(field string) string {
	return r[field]
}

// Row projects the record onto columns. Missing fields render empty.
func (r Record) Row(columns []string) []string {
	row := make([]string, len(columns))
	for i, col := range columns {
		row[i] = r[col]
	}
	return row
}

// GameDay holds all games fetched for one calendar date.
type GameDay struct {
	Date      time.Time
	SourceURL string
	Games     []Record
}

// NewGameDay creates a GameDay. A nil slice of games is replaced with an empty one.
func NewGameDay(date time.Time, sourceURL string, games []Record) *GameDay {
	if games == nil {
		games = make([]Record, 0)
	}
	return &GameDay{
		Date:      date,
		SourceURL: sourceURL,
		Games:     games,
	}
}

// Len returns the number of games.
func (d *GameDay) Len() int {
	return len(d.Games)
}
