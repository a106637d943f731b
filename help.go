package main

import (
	"strconv"
	"strings"
)

const interactiveHelp = `
Commands:

  scan <path>          Scan a directory and replace the current catalog
  search <query>       Search the current catalog
  write2md <file>      Write the last search to a markdown document
  export <file>        Write the last search to a .md, .json or .sqlite document
  preview              Render the last search in the terminal
  syntax               Show the query syntax guide
  help                 Show this message
  quit                 Leave medman
`

const syntaxGuide = `
# Query Syntax

A query is a list of field:value clauses separated by whitespace. Values cannot contain
spaces; the scanner stores spaces in titles, authors and albums as underscores.

path:<text>                         - Exact file path
size:<bytes>                        - Exact file size in bytes
title:<text>                        - Exact title
author:<text>                       - Exact author (artist)
album:<text>                        - Exact album
year:<number>                       - Exact release year
genre:<name>                        - Exact genre
duration:<duration>                 - Exact duration, e.g. 3m25s, 205s, 1min5.5s or 205

Field names are lower-case and matching is case-sensitive. Extra colons are ignored
after the value, so "title:a:b" searches for "a".

## Combinations

By default a record is listed once for every clause it matches, so overlapping clauses
list the same file several times. Start medman with --match all to list only the files
matching every clause.

## Genres

Blues, Country, Disco, HipHop, Jazz, Metal, NewAge, Oldies, Pop, RAndB, Rap, Reggae,
Rock, DeathMetal, Classical, Instrumental, Soul, Punk, Electronic, Opera, Symphony,
Samba, ACapela, DanceHall and Unknown.

## Diagnostics

Clauses without a colon are skipped. Unknown fields and values of the wrong type are
reported on stderr and never abort the search.

## Examples

genre:Jazz                          - Every jazz track
author:Charles_Mingus year:1959     - Mingus tracks, plus every 1959 track
album:Kind_of_Blue genre:Jazz       - With --match all: the jazz tracks of Kind of Blue
duration:4m10s                      - Tracks of exactly four minutes ten seconds
`

func commatize(n int) string {
	s := strconv.Itoa(n)
	if n < 0 {
		return "-" + commatize(-n)
	}
	if len(s) <= 3 {
		return s
	}
	var res []string
	for len(s) > 3 {
		res = append(res, s[len(s)-3:])
		s = s[:len(s)-3]
	}
	res = append(res, s)
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return strings.Join(res, ",")
}
