package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/minaorangina/canary/internal/config"
	"github.com/minaorangina/canary/internal/logging"
	"github.com/minaorangina/canary/protocol"
	"github.com/minaorangina/canary/records"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	if err != nil {
		logrus.WithError(err).Fatal("could not set up logging")
	}

	path := flag.String("records", cfg.RecordsPath, "records file written by the cli")
	threshold := flag.Int("threshold", 2, "minimum hand growth, exclusive, that counts as a jump")
	turn := flag.Int("turn", 0, "show every player's cards at this turn instead of the tally")
	flag.Parse()

	file, err := os.Open(*path)
	if err != nil {
		logger.WithError(err).Fatal("could not open records file")
	}
	defer file.Close()

	recs, err := records.Read(file)
	if err != nil {
		logger.WithError(err).Fatal("could not read records")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	if *turn > 0 {
		rec, ok := records.AtTurn(recs, *turn)
		if !ok {
			logger.WithField("turn", *turn).Fatal("no record for turn")
		}
		total := records.Totals([]protocol.TurnRecord{rec})[0]

		fmt.Fprintln(w, "PLAYER\tTOTAL\tHAND")
		for player, n := range total {
			hand := ""
			if player < len(rec.CardsInHands) {
				hand = strings.Join(rec.CardsInHands[player], ", ")
			}
			fmt.Fprintf(w, "%d\t%d\t%s\n", player+1, n, hand)
		}
		return
	}

	jumps := records.HandJumps(recs, *threshold)
	logger.WithFields(logrus.Fields{
		"records": len(recs),
		"jumps":   len(jumps),
	}).Info("records read")

	fmt.Fprintln(w, "CARD\tCOUNT")
	for _, c := range records.CountCards(jumps) {
		fmt.Fprintf(w, "%s\t%d\n", c.Card, c.Count)
	}
}
