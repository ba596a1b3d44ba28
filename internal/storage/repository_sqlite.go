package storage

import (
	"github.com/jimmy058910/replitballgame-sub010/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) SaveMatchResult(res *game.MatchResult) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		rec := MatchRecord{
			MatchID:   res.MatchID,
			HomeTeam:  res.HomeTeam,
			AwayTeam:  res.AwayTeam,
			HomeScore: res.HomeScore,
			AwayScore: res.AwayScore,
			Duration:  res.Duration,
			Ticks:     res.Ticks,
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		if len(res.Events) > 0 {
			events := make([]MatchEventRecord, 0, len(res.Events))
			for _, ev := range res.Events {
				er, err := eventToRecord(res.MatchID, ev)
				if err != nil {
					return err
				}
				events = append(events, er)
			}
			if err := tx.CreateInBatches(events, 200).Error; err != nil {
				return err
			}
		}
		if len(res.Players) > 0 {
			lines := make([]PlayerStatRecord, 0, len(res.Players))
			for _, pl := range res.Players {
				lr, err := playerLineToRecord(res.MatchID, pl)
				if err != nil {
					return err
				}
				lines = append(lines, lr)
			}
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sqliteRepository) GetMatch(matchID string) (*MatchRecord, error) {
	var rec MatchRecord
	if err := r.db.Where("match_id = ?", matchID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *sqliteRepository) ListMatches(limit int) ([]MatchRecord, error) {
	var recs []MatchRecord
	if err := r.db.Order("created_at DESC").Limit(limit).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *sqliteRepository) GetEvents(matchID string) ([]MatchEventRecord, error) {
	var evs []MatchEventRecord
	if err := r.db.Where("match_id = ?", matchID).Order("seq ASC").Find(&evs).Error; err != nil {
		return nil, err
	}
	return evs, nil
}

func (r *sqliteRepository) GetPlayerStats(matchID string) ([]PlayerStatRecord, error) {
	var lines []PlayerStatRecord
	if err := r.db.Where("match_id = ?", matchID).Order("id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}
