package database

import (
    "time"
    "local/fresco/simple"
)

// One row per completed game.  Seats and scores are stored positionally so
// seat i's painter and final tile count line up.
func (db *DB) StoreGame(id int, creator simple.Identity, seats []simple.Identity,
        scores []int, running time.Time, complete time.Time) error {

    seatIds := make([]string, len(seats))
    for i, s := range seats {
        seatIds[i] = s.Id
    }

    _, err := db.exec(
        "insert into games values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)",
        id, creator.Id,
        seatIds[0], seatIds[1], seatIds[2],
        scores[0], scores[1], scores[2],
        running, complete)
    if err != nil {
        db.errorf("Unable to insert into games table in db: %s", err)
        return err
    }

    db.infof("Stored game %d", id)
    return nil
}
