////////////////////////////////////////////////////////////////////////////////
// Treasury DAO: local debug harness wiring the in-memory host capabilities
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"treasury_dao/contract"
	"treasury_dao/sdk"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})

	env := &contract.MockENV{
		ContractAddress: sdk.Address("contract:treasury"),
		Sender:          sdk.Address("hive:curator"),
		Timestamp:       1_700_000_000,
	}
	bank := contract.NewMemoryBank(1_000_000)
	bank.Accounts["hive:alice"] = 1_000

	dao := contract.New("hive:curator", 2, contract.Deps{
		Env:     env,
		Bank:    bank,
		Invoker: &contract.MockInvoker{},
		Logger:  &logger,
	})

	if err := dao.ChangeAllowedRecipients("hive:bob", true); err != nil {
		logger.Fatal().Err(err).Msg("registry change failed")
	}

	env.Sender = "hive:alice"
	id, err := dao.NewProposal("hive:bob", 500, []byte("fund bob"), nil, 2*contract.Week, 2)
	if err != nil {
		logger.Fatal().Err(err).Msg("proposal creation failed")
	}
	if err := dao.Vote(id, true); err != nil {
		logger.Fatal().Err(err).Msg("vote failed")
	}

	fmt.Printf("proposals: %d, escrowed: %d, spendable: %d\n",
		dao.NumberOfProposals(), dao.SumOfProposalDeposits(), dao.SpendableBalance())
}
