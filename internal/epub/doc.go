// Package epub extracts the spoken text of EPUB e-books.
//
// The reader walks the book's spine in reading order and flattens each
// chapter's XHTML to plain text:
//
//	plain, err := epub.ToText("/books/novel.epub")
//	if err != nil {
//	    return err
//	}
//	narration := text.CleanForSpeech(plain)
//
// Only the text content is used; styling, scripts, and images are
// ignored.
package epub
