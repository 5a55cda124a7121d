package cli

import (
	"github.com/spf13/cobra"

	"github.com/lazharichir/showdown/cards"
	"github.com/lazharichir/showdown/hands"
)

func newDealCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deal",
		Short: "Deal two random hands and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deck := cards.ShuffleDeck(cards.NewDeck())

			dealtA, deck := cards.DealCards(deck, cards.HandSize)
			dealtB, _ := cards.DealCards(deck, cards.HandSize)

			handA, err := cards.HandFromCards(dealtA...)
			if err != nil {
				return err
			}
			handB, err := cards.HandFromCards(dealtB...)
			if err != nil {
				return err
			}

			evalA := hands.Evaluate(handA)
			evalB := hands.Evaluate(handB)
			renderDuel(handA.String(), handB.String(), evalA, evalB, hands.Compare(evalA, evalB))

			return nil
		},
	}
}
