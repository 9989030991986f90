package model

// Player mirrors a cricket_team row. Name, JerseyNumber and Role are nil
// when the row holds NULL for that column.
type Player struct {
	ID           int64
	Name         *string
	JerseyNumber *int64
	Role         *string
}

func StringPtr(v string) *string { return &v }

func Int64Ptr(v int64) *int64 { return &v }
