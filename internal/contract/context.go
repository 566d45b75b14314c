package contract

import "github.com/alexanderramin/trainsafe/internal/domain"

type BuildContextRequest struct {
	Player   domain.PlayerContext
	Load     *domain.LoadContext
	Override *domain.Override
}

func NewBuildContextRequest(player domain.PlayerContext) BuildContextRequest {
	return BuildContextRequest{Player: player}
}
