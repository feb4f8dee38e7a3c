package content

// Art pieces are drawn with spaces transparent; a leading newline is trimmed by the renderer

const Banner = `
  ____  ___  ____       _ _   _ _
 / ___|/ _ \|  _ \     | | | | | |
| |  _| | | | | | |_   | | | | | |
| |_| | |_| | |_| | |__| | |_| | |___
 \____|\___/|____/ \____/ \___/|_____|`

const Present = `
      __  __
     (  \/  )
  ____\_\/_/____
 |      ||      |
 |______||______|
 |      ||      |
 |      ||      |
 |______||______|`

const Cat = `
   /\_/\
  ( -.- )
   > ^ <
  /     \
 (_______)~~`

const Tree = `
      *
     /.\
    /o..\
    /..o\
   /.o..o\
   /...o.\
  /..o....\
  ^^^[_]^^^`

const Santa = `
     __
   _|==|_
    ('')___/
>--(_>--(_)
   / \    \
  (   )    )`

var arts = map[string]string{
	"banner":  Banner,
	"present": Present,
	"cat":     Cat,
	"tree":    Tree,
	"santa":   Santa,
}

// Art returns the named piece, empty when unknown
func Art(name string) string {
	return arts[name]
}
