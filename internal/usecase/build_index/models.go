package build_index

// File загруженный документ
type File struct {
	Name string
	Data []byte
}

// Response результат построения индекса
type Response struct {
	Documents int
	Chunks    int
}
