package models

// Choice is a selectable value with its human readable label.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type FilmWorkType string

const (
	FilmWorkTypeMovie  FilmWorkType = "movie"
	FilmWorkTypeTVShow FilmWorkType = "tv_show"
)

func (t FilmWorkType) Valid() bool {
	switch t {
	case FilmWorkTypeMovie, FilmWorkTypeTVShow:
		return true
	}
	return false
}

func FilmWorkTypeChoices() []Choice {
	return []Choice{
		{Value: string(FilmWorkTypeMovie), Label: "movie"},
		{Value: string(FilmWorkTypeTVShow), Label: "tv show"},
	}
}

type RoleType string

const (
	RoleDirector RoleType = "director"
	RoleWriter   RoleType = "writer"
	RoleActor    RoleType = "actor"
)

func (r RoleType) Valid() bool {
	switch r {
	case RoleDirector, RoleWriter, RoleActor:
		return true
	}
	return false
}

func RoleTypeChoices() []Choice {
	return []Choice{
		{Value: string(RoleDirector), Label: "director"},
		{Value: string(RoleWriter), Label: "writer"},
		{Value: string(RoleActor), Label: "actor"},
	}
}
