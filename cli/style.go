package cli

import (
	"github.com/pterm/pterm"

	"github.com/lazharichir/showdown/hands"
)

// renderDuel prints both hands side by side with the verdict underneath.
func renderDuel(inputA, inputB string, evalA, evalB hands.HandEvaluation, outcome hands.Outcome) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)

	panelA := pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("|HAND A|")).WithTitleTopCenter().Sprintf(handInfo(inputA, evalA))}
	panelB := pterm.Panel{Data: pbox.WithTitle(pterm.LightMagenta("|HAND B|")).WithTitleTopCenter().Sprintf(handInfo(inputB, evalB))}
	verdict := pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|SHOWDOWN|")).WithTitleTopCenter().Sprintf(outcomeInfo(outcome))}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{panelA, panelB},
		{verdict},
	}).Render()
}

// handInfo formats one hand's evaluation for display.
func handInfo(input string, evaluation hands.HandEvaluation) string {
	best := pterm.BgGreen.Sprintf(" %s ", evaluation.HandCards.String())
	return pterm.Sprintfln("%s", best) +
		pterm.Sprintfln("Rank: %s", pterm.LightGreen(evaluation.Rank.String())) +
		pterm.Sprintfln("Kickers: %v", evaluation.Kickers) +
		pterm.Sprintfln("Input: %s", input)
}

func outcomeInfo(outcome hands.Outcome) string {
	switch outcome {
	case hands.FirstWins:
		return pterm.Sprintfln("%s", pterm.LightCyan("Hand A wins"))
	case hands.SecondWins:
		return pterm.Sprintfln("%s", pterm.LightMagenta("Hand B wins"))
	default:
		return pterm.Sprintfln("%s", pterm.LightYellow("Split pot"))
	}
}
