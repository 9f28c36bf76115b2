// Package bootstrap reads the viper config and builds the services shared by the api and the cli
package bootstrap

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"

	bCtx "github.com/x-xyz/nftexplorer/base/ctx"
	"github.com/x-xyz/nftexplorer/base/env"
	"github.com/x-xyz/nftexplorer/base/log"
	"github.com/x-xyz/nftexplorer/domain"
	hcdomain "github.com/x-xyz/nftexplorer/domain/healthcheck"
	"github.com/x-xyz/nftexplorer/domain/keys"
	"github.com/x-xyz/nftexplorer/service/cache"
	"github.com/x-xyz/nftexplorer/service/cache/provider/memory"
	"github.com/x-xyz/nftexplorer/service/cache/provider/primitive"
	"github.com/x-xyz/nftexplorer/service/chain"
	"github.com/x-xyz/nftexplorer/service/chain/contract"
	"github.com/x-xyz/nftexplorer/service/ens"
	hc_repo "github.com/x-xyz/nftexplorer/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/nftexplorer/stores/healthcheck/usecase"
	network_usecase "github.com/x-xyz/nftexplorer/stores/network/usecase"
	nft_usecase "github.com/x-xyz/nftexplorer/stores/nft/usecase"
	nftdetector_usecase "github.com/x-xyz/nftexplorer/stores/nftdetector/usecase"
	session_repository "github.com/x-xyz/nftexplorer/stores/session/repository"
	session_usecase "github.com/x-xyz/nftexplorer/stores/session/usecase"
	web_resource_repository "github.com/x-xyz/nftexplorer/stores/web_resource/repository"
	web_resource_usecase "github.com/x-xyz/nftexplorer/stores/web_resource/usecase"
)

const mainnet domain.ChainId = "1"

// Services are the usecases the deliveries are built on
type Services struct {
	Chain       chain.Client
	Ens         ens.ENS
	Network     domain.NetworkUseCase
	Session     domain.SessionUseCase
	HealthCheck hcdomain.HealthCheckUsecase
}

// ReadConfig loads the yaml config, NFTEXPLORER_* env vars override any key
func ReadConfig(file string) error {
	if len(file) == 0 {
		file = env.ConfigFile()
	}
	viper.SetConfigType("yaml")
	viper.SetConfigFile(file)
	viper.SetEnvPrefix("nftexplorer")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	return log.Init(viper.GetString("log.level"), viper.GetBool("debug"))
}

// ChainConfig maps `networks.<name>.{chainId,rpcUrl,maxConcurrency}` to the chain client config
func ChainConfig() *chain.ClientCfg {
	cfg := &chain.ClientCfg{Networks: make(map[domain.ChainId]chain.NetworkCfg)}
	networks := viper.Sub("networks")
	if networks == nil {
		return cfg
	}
	for k := range networks.AllSettings() {
		chainId := domain.ChainId(networks.GetString(fmt.Sprintf("%s.chainId", k)))
		rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", k))
		if len(chainId) == 0 || len(rpcUrl) == 0 {
			continue
		}
		cfg.Networks[chainId] = chain.NetworkCfg{
			RpcUrl:         rpcUrl,
			MaxConcurrency: networks.GetInt(fmt.Sprintf("%s.maxConcurrency", k)),
		}
	}
	return cfg
}

// New dials the configured chains and builds every usecase. Chains that fail to dial are
// logged and left out, the services still start.
func New(ctx bCtx.Ctx) *Services {
	httpTimeout := viper.GetDuration("http.timeout")
	chainTimeout := viper.GetDuration("chain.timeout")
	gatewayHost := viper.GetString("ipfs.gatewayHost")
	ipfsApiUrl := viper.GetString("ipfs.api")
	sessionTtl := viper.GetDuration("session.ttl")

	ctx.WithFields(log.Fields{
		"http.timeout":     httpTimeout,
		"chain.timeout":    chainTimeout,
		"ipfs.gatewayHost": gatewayHost,
		"ipfs.api":         ipfsApiUrl,
		"session.ttl":      sessionTtl,
	}).Info("config")

	chainCfg := ChainConfig()
	chainService, err := chain.NewClient(ctx, chainCfg)
	if err != nil {
		ctx.WithField("err", err).Warn("chainService started with error")
	}

	// sessions carry on-chain data: uris, far above freecache's 1/1024 entry limit
	sessionCache := memory.NewMemory("session", viper.GetDuration("cache.sessionCleanupInterval"))
	ensCache := primitive.NewPrimitive("ens", viper.GetInt("cache.ensSizeMB"))

	// ens on ethereum
	var ensService ens.ENS
	if network, ok := chainCfg.Networks[mainnet]; ok && viper.GetBool("ens.enable") {
		backend, err := ethclient.DialContext(ctx, network.RpcUrl)
		if err != nil {
			ctx.WithField("err", err).Warn("ens disabled, failed to dial mainnet")
		} else {
			ensService = ens.New(backend, ensCache, viper.GetDuration("ens.ttl"))
		}
	}

	httpClient := &http.Client{}
	ipfsReader := web_resource_repository.NewIpfsGatewayReaderRepo(httpClient, nft_usecase.GatewayBase(gatewayHost), httpTimeout)
	if len(ipfsApiUrl) > 0 {
		ipfsReader = web_resource_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(ipfsApiUrl), httpTimeout)
	}
	webResource := web_resource_usecase.NewWebResourceUseCase(&web_resource_usecase.WebResourceUseCaseCfg{
		HttpReader:    web_resource_repository.NewHttpReaderRepo(httpClient, httpTimeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: web_resource_repository.NewDataUriReaderRepo(),
		ArUriReader:   web_resource_repository.NewArReaderRepo(httpClient, httpTimeout, nil),
	})

	network := network_usecase.NewNetworkUseCase()
	detector := nftdetector_usecase.NewNFTDetectorUseCase(&nftdetector_usecase.NFTDetectorCfg{
		Erc165Service: contract.NewErc165(chainService),
	})
	resolver := nft_usecase.NewNFTResolverUseCase(&nft_usecase.NFTResolverCfg{
		Erc721Service:  contract.NewErc721(chainService),
		Erc1155Service: contract.NewErc1155(chainService),
		WebResource:    webResource,
		GatewayHost:    gatewayHost,
		Ens:            ensService,
	})
	session := session_usecase.NewSessionUseCase(&session_usecase.SessionUseCaseCfg{
		Repo: session_repository.New(cache.New(cache.ServiceConfig{
			Ttl:   sessionTtl,
			Pfx:   keys.PfxSession,
			Cache: sessionCache,
		})),
		Network:      network,
		Detector:     detector,
		Resolver:     resolver,
		Chain:        chainService,
		Erc20:        contract.NewErc20(chainService),
		Ens:          ensService,
		ChainTimeout: chainTimeout,
		FetchTimeout: httpTimeout,
	})

	return &Services{
		Chain:       chainService,
		Ens:         ensService,
		Network:     network,
		Session:     session,
		HealthCheck: hc_usecase.New(hc_repo.New(sessionCache, chainService)),
	}
}
