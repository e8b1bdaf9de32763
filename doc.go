// Package ledit is a small embeddable line editor for terminal programs.
//
// ReadLine prints a prompt, switches the terminal to unbuffered input
// without echo, and lets the user edit one line:
//
//	Left, Right                move one byte
//	Home, End, Ctrl+A, Ctrl+E  move to the start or end
//	Ctrl+Left, Ctrl+Right      jump to the previous or next space, '_' or '-'
//	Backspace, Delete          remove a byte
//	Up, Down                   recall history
//	Enter                      accept the line
//
// Accepted lines are appended to the editor's History, which lives as long
// as the caller keeps it and can be shared between editors.
//
//	ed := ledit.New(ledit.WithHighlighter(ledit.WordsHighlighter()))
//	defer ed.Close()
//
//	for {
//	    line, err := ed.ReadLine("ledit$ ", 7)
//	    if err != nil {
//	        break
//	    }
//	    fmt.Println(line)
//	}
//
// Cursor arithmetic is byte based; the line holds raw bytes and is limited
// to 255 bytes unless WithMaxLineLength says otherwise.
package ledit
