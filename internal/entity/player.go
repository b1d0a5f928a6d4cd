package entity

// Player is the display identity of one side. It has no effect on the rules.
type Player struct {
	ID             string `json:"id"`
	Mark           Mark   `json:"mark"`
	Name           string `json:"name"`
	Icon           string `json:"icon"`
	Color          string `json:"color"`
	VictoryMessage string `json:"victory_message"`
}

type Roster struct {
	X Player `json:"x"`
	O Player `json:"o"`
}

func DefaultRoster() Roster {
	return Roster{
		X: Player{
			ID:             "x",
			Mark:           PlayerX,
			Name:           "Lavanda",
			Icon:           "Good%20Lavanda.jpg",
			Color:          "good",
			VictoryMessage: "¡El bien prevalece!",
		},
		O: Player{
			ID:             "o",
			Mark:           PlayerO,
			Name:           "Píldorín",
			Icon:           "Bad%20Pill.jpg",
			Color:          "bad",
			VictoryMessage: "¡El mal triunfa esta vez!",
		},
	}
}

func (that Roster) ByMark(mark Mark) Player {
	if mark == PlayerO {
		return that.O
	}
	return that.X
}
