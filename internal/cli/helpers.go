package cli

import (
	"fmt"
	"strconv"

	"github.com/hzafar/tripmark/internal/store"
	"github.com/hzafar/tripmark/internal/travellog"
)

// loadState seeds a collection and an id-aware factory from the durable record.
func loadState(st *store.Store) (*travellog.Collection, *travellog.Factory, error) {
	logs := travellog.NewCollection()
	factory := travellog.NewFactory()
	for _, log := range st.Load() {
		if err := logs.Add(log); err != nil {
			return nil, nil, fmt.Errorf("load travel logs: %w", err)
		}
		factory.MarkUsed(log.ID)
	}
	return logs, factory, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}

func formatLog(log travellog.TravelLog) string {
	return fmt.Sprintf("%s → %s · %s · %g km · %g hr", log.From, log.To, log.Mode.Label(), log.Distance, log.Duration)
}
