package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/mww/espn_client/espn"
)

// Prints the standings for a league, a quick way to exercise the client
// against a real league. Configuration comes from the environment (or a .env
// file): ESPN_LEAGUE_ID is required, ESPN_SWID and ESPN_S2 are needed for
// private leagues, and ESPN_SEASON defaults to the current year.
func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	leagueID, err := strconv.Atoi(os.Getenv("ESPN_LEAGUE_ID"))
	if err != nil {
		log.Fatalf("ESPN_LEAGUE_ID must be set to a league id: %v", err)
	}

	season := time.Now().Year()
	if s := os.Getenv("ESPN_SEASON"); s != "" {
		season, err = strconv.Atoi(s)
		if err != nil {
			log.Fatalf("error parsing ESPN_SEASON: %v", err)
		}
	}

	client, err := espn.New(leagueID, os.Getenv("ESPN_SWID"), os.Getenv("ESPN_S2"))
	if err != nil {
		log.Fatalf("error creating espn client: %v", err)
	}

	ctx := context.Background()

	settings, err := client.LeagueSettings(ctx, season)
	if err != nil {
		log.Fatalf("error loading league settings: %v", err)
	}

	status, err := client.LeagueStatus(ctx, season)
	if err != nil {
		log.Fatalf("error loading league status: %v", err)
	}

	teams, err := client.TeamData(ctx, season)
	if err != nil {
		log.Fatalf("error loading teams: %v", err)
	}

	sort.Slice(teams, func(i, j int) bool {
		a, b := teams[i].Record, teams[j].Record
		if a == nil || b == nil {
			return a != nil
		}
		if a.Overall.Wins != b.Overall.Wins {
			return a.Overall.Wins > b.Overall.Wins
		}
		return a.Overall.PointsFor > b.Overall.PointsFor
	})

	fmt.Printf("%s - %d, week %d\n", settings.Name, season, status.CurrentMatchupPeriod)
	for i, t := range teams {
		var wins, losses, ties int
		var pointsFor float64
		if t.Record != nil {
			wins = t.Record.Overall.Wins
			losses = t.Record.Overall.Losses
			ties = t.Record.Overall.Ties
			pointsFor = t.Record.Overall.PointsFor
		}
		fmt.Printf("%2d. %-30s %d-%d-%d %8.2f\n", i+1, t.DisplayName(), wins, losses, ties, pointsFor)
	}
}
