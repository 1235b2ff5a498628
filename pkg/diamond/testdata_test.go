package diamond

// erc20ABI mixes functions with an event, an error and a constructor
const erc20ABI = `[
  {"type":"constructor","inputs":[{"name":"supply","type":"uint256"}],"stateMutability":"nonpayable"},
  {"type":"function","name":"totalSupply","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
  {"type":"function","name":"balanceOf","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
  {"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256","indexed":false}],"anonymous":false},
  {"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
  {"type":"error","name":"InsufficientBalance","inputs":[{"name":"needed","type":"uint256"}]},
  {"type":"function","name":"approve","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable"},
  {"type":"function","name":"init","inputs":[{"name":"data","type":"bytes"}],"outputs":[],"stateMutability":"nonpayable"}
]`

// diamondCutABI uses a tuple array parameter
const diamondCutABI = `[
  {"type":"function","name":"diamondCut","inputs":[
    {"name":"_diamondCut","type":"tuple[]","internalType":"struct IDiamondCut.FacetCut[]","components":[
      {"name":"facetAddress","type":"address"},
      {"name":"action","type":"uint8","internalType":"enum IDiamondCut.FacetCutAction"},
      {"name":"functionSelectors","type":"bytes4[]"}
    ]},
    {"name":"_init","type":"address"},
    {"name":"_calldata","type":"bytes"}
  ],"outputs":[],"stateMutability":"nonpayable"}
]`

const (
	selTotalSupply = "0x18160ddd"
	selBalanceOf   = "0x70a08231"
	selTransfer    = "0xa9059cbb"
	selApprove     = "0x095ea7b3"
	selDiamondCut  = "0x1f931c1c"
	selFacets      = "0x7a0ed627"
	selOwner       = "0x8da5cb5b"
)
