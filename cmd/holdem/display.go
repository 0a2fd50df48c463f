package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"holdemsim/pkg/deck"
	"holdemsim/pkg/playable"
	"holdemsim/pkg/playable/poker"
	"holdemsim/pkg/playable/poker/texasholdem"
)

// display renders the table to the terminal
type display struct {
	out       io.Writer
	humanSeat int
}

func newDisplay(out io.Writer, humanSeat int) *display {
	return &display{
		out:       out,
		humanSeat: humanSeat,
	}
}

func (d *display) name(playerID int) string {
	if playerID == d.humanSeat {
		return "You"
	}

	return fmt.Sprintf("Bot %d", playerID)
}

// Log prints game log messages as they arrive
func (d *display) Log(messages []*playable.LogMessage) {
	for _, msg := range messages {
		line := msg.Message
		if len(msg.PlayerIDs) > 0 {
			line = d.name(msg.PlayerIDs[0]) + " " + line
		}

		if len(msg.Cards) > 0 {
			line += "  " + pterm.LightCyan(glyphs(msg.Cards))
		}

		pterm.Fprintln(d.out, line)
	}
}

// turn shows the human what they are facing
func (d *display) turn(state poker.State) {
	board := "-"
	if len(state.Community) > 0 {
		board = glyphs(state.Community)
	}

	body := fmt.Sprintf("Hole cards: %s\nBoard:      %s\nPot:        $%d\nStack:      $%d\nTo call:    $%d",
		pterm.LightGreen(glyphs(state.HoleCards)),
		pterm.LightCyan(board),
		state.Pots.Total(),
		state.Stack,
		state.ToCall(),
	)

	pterm.Fprintln(d.out, pterm.DefaultBox.
		WithLeftPadding(4).WithRightPadding(4).
		WithTitle(pterm.LightGreen("|"+state.Street+"|")).
		WithTitleTopCenter().
		Sprint(body))
}

func (d *display) handResult(result *texasholdem.HandResult) {
	pterm.Fprintln(d.out)

	if len(result.Showdown) > 0 {
		data := pterm.TableData{{"Player", "Hole cards", "Best hand", "Category"}}
		for _, entry := range result.Showdown {
			data = append(data, []string{
				d.name(entry.PlayerID),
				glyphs(entry.HoleCards),
				glyphs(entry.BestCards),
				entry.Category.String(),
			})
		}

		table, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		pterm.Fprintln(d.out, table)
	}

	for _, id := range result.Winners {
		won := result.Settlement.Won(id)
		pterm.Fprintln(d.out, pterm.LightGreen(fmt.Sprintf("%s won $%d", d.name(id), won)))
	}

	for _, id := range result.Busted {
		pterm.Fprintln(d.out, pterm.LightRed(d.name(id)+" is out of chips"))
	}
}

func (d *display) standings(table *texasholdem.Table) {
	participants := table.Participants()
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Stack > participants[j].Stack
	})

	data := pterm.TableData{{"Player", "Stack", "Net"}}
	for _, p := range participants {
		data = append(data, []string{d.name(p.PlayerID), "$" + strconv.Itoa(p.Stack), signed(p.Net())})
	}

	rendered, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	pterm.Fprintln(d.out, pterm.DefaultSection.Sprint(fmt.Sprintf("After hand %d", table.HandNumber())))
	pterm.Fprintln(d.out, rendered)
}

func (d *display) gameOver(details *playable.GameOverDetails) {
	ids := make([]int, 0, len(details.BalanceAdjustments))
	for id := range details.BalanceAdjustments {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	data := pterm.TableData{{"Player", "Net"}}
	for _, id := range ids {
		data = append(data, []string{d.name(id), signed(details.BalanceAdjustments[id])})
	}

	rendered, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	pterm.Fprintln(d.out, pterm.DefaultSection.Sprint("Game over"))
	pterm.Fprintln(d.out, rendered)
}

func signed(amount int) string {
	if amount > 0 {
		return pterm.LightGreen(fmt.Sprintf("+$%d", amount))
	} else if amount < 0 {
		return pterm.LightRed(fmt.Sprintf("-$%d", -amount))
	}

	return "$0"
}

// glyphs renders cards with suit symbols, i.e., "A♠ 10♥"
func glyphs(cards deck.Hand) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = card.String()
	}

	return strings.Join(s, " ")
}
