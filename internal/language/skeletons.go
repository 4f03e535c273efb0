package language

// Each skeleton pairs a solve-style entry point with a driver that reads a
// test count and loops. Languages without a skeleton here get the
// comment-only stub from the renderer.

const cppSkeleton = `#include <bits/stdc++.h>
using namespace std;

void solve() {
    // your solution here
}

int main() {
    ios_base::sync_with_stdio(false);
    cin.tie(nullptr);

    int t = 1;
    cin >> t;
    while (t--) {
        solve();
    }
    return 0;
}
`

const pythonSkeleton = `import sys

input = sys.stdin.readline


def solve():
    # your solution here
    pass


def main():
    t = int(input())
    for _ in range(t):
        solve()


if __name__ == "__main__":
    main()
`

const javaSkeleton = `import java.io.*;
import java.util.*;

public class Main {
    static void solve(BufferedReader in, PrintWriter out) throws IOException {
        // your solution here
    }

    public static void main(String[] args) throws IOException {
        BufferedReader in = new BufferedReader(new InputStreamReader(System.in));
        PrintWriter out = new PrintWriter(new BufferedWriter(new OutputStreamWriter(System.out)));
        int t = Integer.parseInt(in.readLine().trim());
        while (t-- > 0) {
            solve(in, out);
        }
        out.flush();
    }
}
`

const goSkeleton = `package main

import (
	"bufio"
	"fmt"
	"os"
)

var reader = bufio.NewReader(os.Stdin)
var writer = bufio.NewWriter(os.Stdout)

func solve() {
	// your solution here
}

func main() {
	defer writer.Flush()

	var t int
	fmt.Fscan(reader, &t)
	for ; t > 0; t-- {
		solve()
	}
}
`
