package server

import (
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/gstoney/mcproto/protocol/v1_17"
	"github.com/gstoney/mcproto/types"
)

// Status is the JSON document carried by StatusResponse.
type Status struct {
	Version     StatusVersion       `json:"version"`
	Players     StatusPlayers       `json:"players"`
	Description types.TextComponent `json:"description"`
	Favicon     string              `json:"favicon,omitempty"`
}

type StatusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type StatusPlayers struct {
	Max    int            `json:"max"`
	Online int            `json:"online"`
	Sample []StatusPlayer `json:"sample,omitempty"`
}

type StatusPlayer struct {
	Name string    `json:"name"`
	ID   uuid.UUID `json:"id"`
}

func (s Status) Marshal() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ParseStatus decodes a status document as sent by a server.
func ParseStatus(doc string) (Status, error) {
	var s Status
	if err := json.Unmarshal([]byte(doc), &s); err != nil {
		return Status{}, err
	}
	return s, nil
}

// Status describes the server as it is now. Connections being served
// count as players online.
func (s *Server) Status() Status {
	return Status{
		Version: StatusVersion{
			Name:     v1_17.Protocol.Name(),
			Protocol: v1_17.Protocol.Version(),
		},
		Players: StatusPlayers{
			Max:    s.MaxPlayers,
			Online: s.Active(),
		},
		Description: types.TextComponent{Text: s.MOTD},
	}
}
