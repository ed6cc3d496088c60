// Copyright 2026 Shulsign
// Licensed under the EUPL-1.2

package models

// The synagogue row is wide and schemaless at the edges (the admin console
// saves arbitrary subsets of it), so it travels as a map and the column
// whitelists below are the single source of truth for what the admin API may
// read or write.

// SynagogueTimeFields are the fixed prayer time columns.
var SynagogueTimeFields = []string{
	"shacharit1",
	"shacharit2",
	"mincha1",
	"mincha2",
	"ariv1",
	"ariv2",
	"shabbat_arvit1",
	"shabbat_arvit2",
	"shabbat_shacharit1",
	"shabbat_shacharit2",
	"shabbat_mincha1",
	"shabbat_mincha2",
}

// SynagogueZmanimFields are the boolean flags selecting which computed
// zmanim the sign displays.
var SynagogueZmanimFields = []string{
	"alotHaShachar",
	"alot72",
	"beinHashmashos",
	"chatzot",
	"chatzosNight",
	"civilDawn",
	"civilDusk",
	"minchaGedola",
	"minchaGedolaMGA",
	"minchaKetana",
	"minchaKetanaMGA",
	"misheyakir",
	"misheyakirMachmir",
	"plagHaMincha",
	"sunrise",
	"sunset",
	"sofZmanTfillaGRA",
	"sofZmanTfillaMGA",
	"sofZmanShacharitGRA",
	"sofZmanShacharitMGA",
}

// SynagogueMiscFields are the remaining free-form settings.
var SynagogueMiscFields = []string{
	"rabbi_msg",
	"tempCelsius",
	"layout_name",
	"image_transition_delay",
	"qr_holiday",
	"emergency_1",
	"emergency_2",
	"emergency_3",
	"emergency_4",
	"emergency_5",
}

// SynagogueImageFields are the image slots of a sign. The stored path lives
// in the "<field>_path" column.
var SynagogueImageFields = []string{
	"logo",
	"pic1",
	"pic2",
	"pic3",
	"pic4",
	"pic5",
	"qr",
}

// EmergencyCompany is a selectable emergency contact provider.
type EmergencyCompany struct {
	ID   int64  `db:"id" json:"-"`
	Name string `db:"name" json:"name"`
}
