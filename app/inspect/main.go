// inspect runs one inspection session from the command line and prints the session as json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/nftexplorer/app/bootstrap"
	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/log"
	"github.com/x-xyz/nftexplorer/domain"
	"golang.org/x/xerrors"
)

func main() {
	pflag.String("config", "", "config file, defaults to infra/configs/config.yaml")
	pflag.String("chain-id", "1", "chain id the wallet is connected to")
	pflag.String("address", "", "wallet address or ens name, empty means not connected")
	pflag.String("contract", "", "nft contract address")
	pflag.String("token-id", "", "token id in decimal")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	if err := bootstrap.ReadConfig(viper.GetString("config")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx := bCtx.Background()
	services := bootstrap.New(ctx)

	session, err := run(ctx, services, viper.GetString("chain-id"), viper.GetString("address"), domain.NFTQuery{
		ContractAddress: domain.Address(viper.GetString("contract")),
		TokenId:         domain.TokenId(viper.GetString("token-id")),
	})
	if session != nil {
		out, _ := json.MarshalIndent(session, "", "  ")
		fmt.Println(string(out))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run walks the same steps as the page: connect, balances, query, check and display.
// The last session is returned with the error that stopped the walk.
func run(ctx bCtx.Ctx, services *bootstrap.Services, chainId, address string, query domain.NFTQuery) (*domain.Session, error) {
	uc := services.Session
	session, err := uc.Create(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := uc.Delete(ctx, session.Id); err != nil {
			ctx.WithField("err", err).Warn("failed to delete session")
		}
	}()

	if strings.HasSuffix(address, ".eth") && services.Ens != nil {
		resolved, err := services.Ens.Resolve(ctx, address)
		if err != nil || len(resolved) == 0 {
			return session, xerrors.Errorf("cannot resolve %s", address)
		}
		address = resolved.String()
	}

	steps := []func() (*domain.Session, error){
		func() (*domain.Session, error) {
			return uc.Connect(ctx, session.Id, &domain.WalletConnection{
				ChainId:         domain.ChainId(chainId),
				SelectedAddress: domain.Address(address),
			})
		},
		func() (*domain.Session, error) { return uc.CheckBalances(ctx, session.Id) },
		func() (*domain.Session, error) { return uc.SetQuery(ctx, session.Id, query) },
		func() (*domain.Session, error) { return uc.CheckNFT(ctx, session.Id) },
		func() (*domain.Session, error) { return uc.DisplayNFT(ctx, session.Id) },
	}
	for _, step := range steps {
		next, err := step()
		if err != nil {
			return session, err
		}
		session = next
	}
	return session, nil
}
