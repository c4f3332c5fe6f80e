package sketch

var (
	Category10 []string
	Plot10     []string
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Plot10 = splitColorString("ff8b009c1de92ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
}

func splitColorString(str string) []string {
	var arr []string
	for i := 0; i < len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}
