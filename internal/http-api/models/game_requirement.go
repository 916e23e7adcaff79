package models

import "time"

// GameRequirement holds the cleaned system requirements for one platform of
// one game. Recommended is nil when the source did not specify it.
// At most one row exists per (game, platform).
type GameRequirement struct {
	ID          int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID      int64     `json:"game_id" gorm:"not null;uniqueIndex:uq_game_requirements_platform"`
	Platform    string    `json:"platform" gorm:"size:10;not null;uniqueIndex:uq_game_requirements_platform"`
	Minimum     string    `json:"minimum" gorm:"type:text;not null;default:''"`
	Recommended *string   `json:"recommended,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (GameRequirement) TableName() string {
	return "game_requirements"
}
