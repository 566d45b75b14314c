package contract

const DefaultAuditLimit = 20

type AuditQuery struct {
	PlayerID string // empty means every player
	Limit    int
}

func NewAuditQuery() AuditQuery {
	return AuditQuery{Limit: DefaultAuditLimit}
}
