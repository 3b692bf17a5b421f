package folio

import "math"

// SharedFolder is a folder whose children are not fixed but drawn from a
// shared Bucket at processing time, up to a target amount. Several shared
// folders referencing the same bucket compete for the pooled funds in
// processing order.
type SharedFolder struct {
	Folder
	bucket       *Bucket
	targetAmount float64
	drawn        float64
}

// SharedFolderOpts holds the optional attributes of a SharedFolder.
type SharedFolderOpts struct {
	AssetClass    AssetClass
	AssetSubclass AssetSubclass
	Target        Target
	// TargetAmount caps how much the folder draws from the bucket.
	// Zero means unbounded (take whatever the bucket has left).
	TargetAmount float64
	Newline      bool
	Display      Display
}

// NewSharedFolder creates an unbounded shared folder drawing from bucket.
func NewSharedFolder(name string, bucket *Bucket) *SharedFolder {
	return NewSharedFolderWith(name, bucket, SharedFolderOpts{})
}

// NewSharedFolderWith creates a shared folder with explicit optional
// attributes. The children start as the bucket's full contents and are
// replaced by the folder's own allocation on the first Process call.
func NewSharedFolderWith(name string, bucket *Bucket, o SharedFolderOpts) *SharedFolder {
	target := o.TargetAmount
	if target == 0 {
		target = math.Inf(1)
	}
	sf := &SharedFolder{bucket: bucket, targetAmount: target}
	sf.nodeBase = newNodeBase(name)
	sf.assetClass = o.AssetClass
	sf.assetSubclass = o.AssetSubclass
	sf.display = o.Display
	sf.shared = true
	setTarget(sf, o.Target)
	for _, l := range bucket.Lines() {
		sf.AddChild(l)
	}
	// The newline flag is set after attaching children: it belongs to the
	// folder and moves onto the last allocated child during Process.
	sf.newline = o.Newline
	return sf
}

// Bucket returns the shared pool this folder draws from.
func (sf *SharedFolder) Bucket() *Bucket { return sf.bucket }

// TargetAmount returns the cap on what the folder draws from the bucket,
// math.Inf(1) when unbounded.
func (sf *SharedFolder) TargetAmount() float64 { return sf.targetAmount }

// Process discards the previous children and replaces them with whatever
// the bucket allocates for the target amount right now. The folder's
// previous draw is refunded first, so reprocessing against an otherwise
// untouched bucket is idempotent. After allocation, only the last child
// carries the folder's newline flag.
func (sf *SharedFolder) Process() {
	sf.Folder.Process()

	sf.bucket.Refund(sf.drawn)
	lines := sf.bucket.UseAmount(sf.targetAmount)

	sf.drawn = 0
	sf.children = sf.children[:0]
	for _, l := range lines {
		l.SetParent(&sf.Folder)
		l.SetNewline(false)
		sf.children = append(sf.children, l)
		sf.drawn += l.GetAmount()
	}
	if len(lines) > 0 {
		lines[len(lines)-1].SetNewline(sf.newline)
	}
}

func (sf *SharedFolder) ToDict() map[string]any {
	m := map[string]any{
		"type":        "shared_folder",
		"name":        sf.name,
		"bucket_name": sf.bucket.Name(),
		"target":      sf.target.toDict(),
		"newline":     sf.newline,
		"display":     int(sf.display),
	}
	if !math.IsInf(sf.targetAmount, 1) {
		m["target_amount"] = sf.targetAmount
	}
	return m
}
