package domain

type AllocationMode string

const (
	AllocationModeManual AllocationMode = "manual"
	AllocationModeAuto   AllocationMode = "auto"
)

const WarningUnresolvedProximity = "unresolved-proximity"

type BucketKey struct {
	Floor string `json:"floor"`
	Wing  string `json:"wing"`
}

func (k BucketKey) Empty() bool {
	return k.Floor == "" && k.Wing == ""
}

func (k BucketKey) Less(o BucketKey) bool {
	if k.Floor != o.Floor {
		return k.Floor < o.Floor
	}
	return k.Wing < o.Wing
}

type Bucket struct {
	Key       BucketKey `json:"key"`
	Capacity  int       `json:"capacity"`
	Allocated int       `json:"allocated"`
}

func (b Bucket) Remaining() int {
	return b.Capacity - b.Allocated
}

// Buckets groups room blocks by floor and wing. Blocks without either are skipped.
func Buckets(blocks []RoomBlock) []Bucket {
	index := make(map[BucketKey]int)
	var res []Bucket
	for _, b := range blocks {
		key := BucketKey{Floor: b.Floor, Wing: b.Wing}
		if key.Empty() {
			continue
		}
		i, ok := index[key]
		if !ok {
			index[key] = len(res)
			res = append(res, Bucket{Key: key})
			i = len(res) - 1
		}
		res[i].Capacity += b.TotalQty
	}
	return res
}

type AllocationOverride struct {
	GuestID string `json:"guest_id"`
	Floor   string `json:"floor"`
	Wing    string `json:"wing"`
}

type AllocationRequest struct {
	Mode      AllocationMode
	Overrides []AllocationOverride
	Reset     bool
	DryRun    bool
}

type Assignment struct {
	GuestID   string `json:"guest_id"`
	GuestName string `json:"guest_name"`
	Floor     string `json:"floor"`
	Wing      string `json:"wing"`
}

func (a Assignment) Key() BucketKey {
	return BucketKey{Floor: a.Floor, Wing: a.Wing}
}

type AllocationWarning struct {
	Code    string `json:"code"`
	GuestID string `json:"guest_id"`
	Message string `json:"message"`
}

type AllocationResult struct {
	Mode        AllocationMode      `json:"mode"`
	Committed   bool                `json:"committed"`
	Assignments []Assignment        `json:"assignments"`
	Unplaced    []Guest             `json:"unplaced"`
	Warnings    []AllocationWarning `json:"warnings"`
	Buckets     []Bucket            `json:"buckets"`
}
