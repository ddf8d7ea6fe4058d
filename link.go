package memberlist

// Link is the pair of neighbor references a List threads through an element. Embed one Link
// field in the element type for every list the element should be able to belong to.
//
// A Link does not own its neighbors and does not know which list it is linked into. Only List
// changes it; everyone else can only read it. The zero value is unlinked, and a Link must not be
// copied while linked.
type Link[T any] struct {
	noCopy noCopy

	next *T
	prev *T
}

// Next returns the element after this one, or nil if this is the last element or unlinked.
func (l *Link[T]) Next() *T { return l.next }

// Prev returns the element before this one, or nil if this is the first element or unlinked.
func (l *Link[T]) Prev() *T { return l.prev }

func (l *Link[T]) reset() { l.next = nil; l.prev = nil }

// Linker picks which Link field of T a List uses. It is normally a zero-size struct type, one per
// field:
//
//	type Job struct {
//		ID    int
//		queue memberlist.Link[Job]
//	}
//
//	type byQueue struct{}
//
//	func (byQueue) Link(j *Job) *memberlist.Link[Job] { return &j.queue }
//
//	var q memberlist.List[Job, byQueue]
type Linker[T any] interface {
	Link(*T) *Link[T]
}

// noCopy makes go vet's copylocks check flag copies of Link.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
