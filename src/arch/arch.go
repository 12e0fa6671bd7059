package arch

// ArchitectureConfig enumerates the FlexCluster architecture parameters:
// cluster topology, memory windows, accelerator register maps and the system
// address map. Addresses and sizes are byte offsets.
//
// The json tag of each field is its stable external name. The arch tag marks
// whether a value is a count, an address or a size.
type ArchitectureConfig struct {
	// Cluster
	NumClusterX       int `json:"num_cluster_x" arch:"count" group:"cluster"`
	NumClusterY       int `json:"num_cluster_y" arch:"count" group:"cluster"`
	NumCorePerCluster int `json:"num_core_per_cluster" arch:"count" group:"cluster"`

	ClusterTcdmBankWidth int `json:"cluster_tcdm_bank_width" arch:"count" group:"cluster"`
	ClusterTcdmBankNb    int `json:"cluster_tcdm_bank_nb" arch:"count" group:"cluster"`

	ClusterTcdmBase   int64 `json:"cluster_tcdm_base" arch:"addr" group:"cluster"`
	ClusterTcdmSize   int64 `json:"cluster_tcdm_size" arch:"size" group:"cluster"`
	ClusterTcdmRemote int64 `json:"cluster_tcdm_remote" arch:"addr" group:"cluster"`

	ClusterStackBase int64 `json:"cluster_stack_base" arch:"addr" group:"cluster"`
	ClusterStackSize int64 `json:"cluster_stack_size" arch:"size" group:"cluster"`

	ClusterRegBase int64 `json:"cluster_reg_base" arch:"addr" group:"cluster"`
	ClusterRegSize int64 `json:"cluster_reg_size" arch:"size" group:"cluster"`

	// RedMulE
	NumRedmulePerCluster int   `json:"num_redmule_per_cluster" arch:"count" group:"redmule"`
	RedmuleCeHeight      int   `json:"redmule_ce_height" arch:"count" group:"redmule"`
	RedmuleCeWidth       int   `json:"redmule_ce_width" arch:"count" group:"redmule"`
	RedmuleCePipe        int   `json:"redmule_ce_pipe" arch:"count" group:"redmule"`
	RedmuleElemSize      int   `json:"redmule_elem_size" arch:"count" group:"redmule"`
	RedmuleQueueDepth    int   `json:"redmule_queue_depth" arch:"count" group:"redmule"`
	RedmuleRegBase       int64 `json:"redmule_reg_base" arch:"addr" group:"redmule"`
	RedmuleRegSize       int64 `json:"redmule_reg_size" arch:"size" group:"redmule"`

	// MtxTran
	MtxtranRegBase int64 `json:"mtxtran_reg_base" arch:"addr" group:"mtxtran"`
	MtxtranRegSize int64 `json:"mtxtran_reg_size" arch:"size" group:"mtxtran"`

	// VectEng
	VectengRegBase int64 `json:"vecteng_reg_base" arch:"addr" group:"vecteng"`
	VectengRegSize int64 `json:"vecteng_reg_size" arch:"size" group:"vecteng"`

	// iDMA
	IdmaOutstandTxn   int `json:"idma_outstand_txn" arch:"count" group:"idma"`
	IdmaOutstandBurst int `json:"idma_outstand_burst" arch:"count" group:"idma"`

	// HBM
	HbmStartBase      int64  `json:"hbm_start_base" arch:"addr" group:"hbm"`
	HbmNodeInterleave int64  `json:"hbm_node_interleave" arch:"size" group:"hbm"`
	NumHbmChPerNode   int    `json:"num_hbm_ch_per_node" arch:"count" group:"hbm"`
	HbmPlacement      [4]int `json:"hbm_placement" arch:"count" group:"hbm"`

	// NoC
	NocOutstanding int `json:"noc_outstanding" arch:"count" group:"noc"`
	NocLinkWidth   int `json:"noc_link_width" arch:"count" group:"noc"` // bits

	// System
	InstructionMemBase int64 `json:"instruction_mem_base" arch:"addr" group:"system"`
	InstructionMemSize int64 `json:"instruction_mem_size" arch:"size" group:"system"`

	SocRegisterBase   int64 `json:"soc_register_base" arch:"addr" group:"system"`
	SocRegisterSize   int64 `json:"soc_register_size" arch:"size" group:"system"`
	SocRegisterEoc    int64 `json:"soc_register_eoc" arch:"addr" group:"system"`
	SocRegisterWakeup int64 `json:"soc_register_wakeup" arch:"addr" group:"system"`

	// Synchronization
	SyncBase       int64 `json:"sync_base" arch:"addr" group:"sync"`
	SyncInterleave int64 `json:"sync_interleave" arch:"size" group:"sync"`
	SyncSpecialMem int64 `json:"sync_special_mem" arch:"size" group:"sync"`
}

// NewArchitectureConfig returns the FlexCluster parameter set. Every call
// yields an identical, fully populated value.
func NewArchitectureConfig() ArchitectureConfig {
	return ArchitectureConfig{
		NumClusterX:       16,
		NumClusterY:       16,
		NumCorePerCluster: 3,

		ClusterTcdmBankWidth: 8,
		ClusterTcdmBankNb:    64,

		ClusterTcdmBase:   0x00000000,
		ClusterTcdmSize:   0x00040000,
		ClusterTcdmRemote: 0x30000000,

		ClusterStackBase: 0x10000000,
		ClusterStackSize: 0x00020000,

		ClusterRegBase: 0x20000000,
		ClusterRegSize: 0x00000200,

		NumRedmulePerCluster: 1,
		RedmuleCeHeight:      128,
		RedmuleCeWidth:       32,
		RedmuleCePipe:        3,
		RedmuleElemSize:      2,
		RedmuleQueueDepth:    1,
		RedmuleRegBase:       0x20010000,
		RedmuleRegSize:       0x00000200,

		MtxtranRegBase: 0x20020000,
		MtxtranRegSize: 0x00000200,

		VectengRegBase: 0x20030000,
		VectengRegSize: 0x00000200,

		IdmaOutstandTxn:   16,
		IdmaOutstandBurst: 256,

		HbmStartBase:      0xc0000000,
		HbmNodeInterleave: 0x00100000,
		NumHbmChPerNode:   1,
		HbmPlacement:      [4]int{16, 0, 0, 16},

		NocOutstanding: 64,
		NocLinkWidth:   1024,

		InstructionMemBase: 0x80000000,
		InstructionMemSize: 0x00010000,

		SocRegisterBase:   0x90000000,
		SocRegisterSize:   0x00010000,
		SocRegisterEoc:    0x90000000,
		SocRegisterWakeup: 0x90000004,

		SyncBase:       0x40000000,
		SyncInterleave: 0x00000080,
		SyncSpecialMem: 0x00000040,
	}
}
